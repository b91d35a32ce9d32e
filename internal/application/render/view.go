package render

import (
	"fmt"
	"strings"

	"github.com/doeshing/autopilot-go/internal/domain"
)

// TabID names a section of the result view.
type TabID string

const (
	TabSummary TabID = "summary"
	TabSteps   TabID = "steps"
	TabData    TabID = "data"
	TabRaw     TabID = "raw"
)

// AllTabs lists every tab id in display order.
var AllTabs = []TabID{TabSummary, TabSteps, TabData, TabRaw}

// ParseTab resolves a tab name; "all" is not a tab and is rejected.
func ParseTab(value string) (TabID, error) {
	id := TabID(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range AllTabs {
		if id == known {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown view %q (want summary|steps|data|raw)", value)
}

// Tab is one navigable section offered for a result.
type Tab struct {
	ID    TabID
	Label string
}

// NoDataExtracted is shown when an extraction result has no data at all.
const NoDataExtracted = "No data extracted"

// View is the structured rendering of one result.
type View struct {
	Title string
	Badge Classification
	Kind  domain.ResultKind
	Tabs  []Tab

	Summary Summary
	// Steps is set only when the steps tab is offered.
	Steps *StepsView
	// Data is set only when the extracted-data tab is offered.
	Data *DataView
	Raw  string
}

// HasTab reports whether id is offered.
func (v View) HasTab(id TabID) bool {
	for _, tab := range v.Tabs {
		if tab.ID == id {
			return true
		}
	}
	return false
}

// Summary is the always-present overview section.
type Summary struct {
	Command  string
	Sections []Section
}

// SectionKind identifies an optional summary field.
type SectionKind string

const (
	SectionMessage         SectionKind = "message"
	SectionDescription     SectionKind = "description"
	SectionFinalScreenshot SectionKind = "final_screenshot"
	SectionScreenshot      SectionKind = "screenshot"
)

// Section is one optional summary field that was present.
type Section struct {
	Kind  SectionKind
	Title string
	Text  string
	Image *Image
}

// Image is a base64 payload destined for display.
type Image struct {
	Alt    string
	Base64 string
}

// StepsView lists the steps of an interactive run.
type StepsView struct {
	Rows []StepRow
}

// StepRow is the collapsible entry for one step.
type StepRow struct {
	// Index is 1-based.
	Index  int
	Label  string
	Action string
	Badge  Classification
	Body   []Block
}

// BlockKind identifies a part of an expanded step.
type BlockKind string

const (
	BlockDetails       BlockKind = "details"
	BlockError         BlockKind = "error"
	BlockImage         BlockKind = "image"
	BlockExtractedData BlockKind = "extracted_data"
)

// Block is one part of an expanded step body.
type Block struct {
	Kind  BlockKind
	Text  string
	Image *Image
}

// DataView lists the extracted fields.
type DataView struct {
	// Empty is true when the payload carried no data at all.
	Empty  bool
	Groups []DataGroup
}

// DataGroup is one extracted field and its rows.
type DataGroup struct {
	Key  string
	Rows []string
}
