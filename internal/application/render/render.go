package render

import (
	"fmt"

	"github.com/doeshing/autopilot-go/internal/domain"
)

// Render builds the view for result as produced under mode. The detail tab
// follows mode even when the payload shape disagrees with it.
func Render(result domain.AutomationResult, mode domain.Mode) View {
	view := View{
		Title:   title(mode),
		Badge:   Classify(string(result.Status)),
		Kind:    result.Kind(),
		Summary: summarize(result),
		Raw:     domain.PrettyJSON(result.Raw),
	}

	view.Tabs = append(view.Tabs, Tab{ID: TabSummary, Label: "Summary"})
	switch mode {
	case domain.ModeInteract:
		view.Tabs = append(view.Tabs, Tab{ID: TabSteps, Label: "Steps"})
		view.Steps = steps(result)
	case domain.ModeExtract:
		view.Tabs = append(view.Tabs, Tab{ID: TabData, Label: "Extracted Data"})
		view.Data = data(result)
	}
	view.Tabs = append(view.Tabs, Tab{ID: TabRaw, Label: "Raw JSON"})
	return view
}

func title(mode domain.Mode) string {
	switch mode {
	case domain.ModeInteract:
		return "Automation Results"
	case domain.ModeExtract:
		return "Extraction Results"
	default:
		return "Results"
	}
}

func summarize(result domain.AutomationResult) Summary {
	summary := Summary{Command: result.OriginalCommand}
	if result.HasMessage() {
		summary.Sections = append(summary.Sections, Section{
			Kind: SectionMessage, Title: "Message", Text: result.Message,
		})
	}
	if result.HasDescription() {
		summary.Sections = append(summary.Sections, Section{
			Kind: SectionDescription, Title: "Description", Text: result.Description,
		})
	}
	if result.HasFinalScreenshot() {
		summary.Sections = append(summary.Sections, Section{
			Kind:  SectionFinalScreenshot,
			Title: "Final Screenshot",
			Image: &Image{Alt: "Final screenshot", Base64: result.FinalScreenshot},
		})
	}
	if result.HasScreenshot() {
		summary.Sections = append(summary.Sections, Section{
			Kind:  SectionScreenshot,
			Title: "Screenshot",
			Image: &Image{Alt: "Screenshot", Base64: result.Screenshot},
		})
	}
	return summary
}

func steps(result domain.AutomationResult) *StepsView {
	view := &StepsView{Rows: make([]StepRow, 0, len(result.Steps))}
	for i, step := range result.Steps {
		index := i + 1
		row := StepRow{
			Index:  index,
			Label:  fmt.Sprintf("Step %d: %s", index, step.Action),
			Action: step.Action,
			Badge:  Classify(string(step.Status)),
		}
		if step.HasDetails() {
			row.Body = append(row.Body, Block{Kind: BlockDetails, Text: step.Details})
		}
		if step.HasError() {
			row.Body = append(row.Body, Block{Kind: BlockError, Text: "Error: " + step.Error})
		}
		if step.HasImage() {
			row.Body = append(row.Body, Block{
				Kind:  BlockImage,
				Image: &Image{Alt: fmt.Sprintf("Step %d result", index), Base64: step.Image},
			})
		}
		if step.HasExtractedData() {
			row.Body = append(row.Body, Block{
				Kind: BlockExtractedData,
				Text: domain.PrettyJSON(step.ExtractedData),
			})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func data(result domain.AutomationResult) *DataView {
	if !result.HasData {
		return &DataView{Empty: true}
	}
	view := &DataView{Groups: make([]DataGroup, 0, len(result.Data))}
	for _, entry := range result.Data {
		view.Groups = append(view.Groups, DataGroup{Key: entry.Key, Rows: entry.Rows()})
	}
	return view
}
