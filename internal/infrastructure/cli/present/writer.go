package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/autopilot-go/internal/application/render"
)

// Options selects what WriteView prints.
type Options struct {
	// Tabs to print in order; empty prints every offered tab.
	Tabs   []render.TabID
	Images ImageOptions
}

// WriteView prints view as plain text. Steps are printed expanded.
func WriteView(w io.Writer, s Styles, view render.View, opts Options) error {
	var b strings.Builder
	b.WriteString(Header(s, view))
	b.WriteString("\n")

	tabs := opts.Tabs
	if len(tabs) == 0 {
		for _, tab := range view.Tabs {
			tabs = append(tabs, tab.ID)
		}
	}

	for _, id := range tabs {
		b.WriteString("\n")
		if !view.HasTab(id) {
			b.WriteString(s.Muted.Render(fmt.Sprintf("(%s view is not available for this result)", id)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(s.Heading.Render(tabLabel(view, id)))
		b.WriteString("\n")
		b.WriteString(TabText(s, view, id, AllExpanded, opts.Images))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteError prints a transport failure banner.
func WriteError(w io.Writer, s Styles, message string) error {
	_, err := fmt.Fprintln(w, s.ErrorBanner.Render("Error: "+message))
	return err
}

// Header is the title line with the top-level status badge.
func Header(s Styles, view render.View) string {
	return s.Title.Render(view.Title) + "  " + s.Badge(view.Badge)
}

// Expansion decides which step rows show their body.
type Expansion func(index int) bool

// AllExpanded expands every step.
func AllExpanded(int) bool { return true }

// TabText renders the body of one tab.
func TabText(s Styles, view render.View, id render.TabID, expanded Expansion, images ImageOptions) string {
	switch id {
	case render.TabSummary:
		return SummaryText(s, view.Summary, images)
	case render.TabSteps:
		if view.Steps == nil {
			return ""
		}
		return StepsText(s, *view.Steps, expanded, -1, images)
	case render.TabData:
		if view.Data == nil {
			return ""
		}
		return DataText(s, *view.Data)
	case render.TabRaw:
		return view.Raw + "\n"
	default:
		return ""
	}
}

// SummaryText renders the summary tab.
func SummaryText(s Styles, summary render.Summary, images ImageOptions) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Command"))
	b.WriteString("\n")
	b.WriteString(indent(summary.Command, "  "))
	b.WriteString("\n")
	for _, section := range summary.Sections {
		b.WriteString(s.Title.Render(section.Title))
		b.WriteString("\n")
		if section.Image != nil {
			b.WriteString(indent(images.DescribeImage(section.Image, SectionImageName(section.Kind)), "  "))
		} else {
			b.WriteString(indent(section.Text, "  "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// StepsText renders the steps tab. selected marks one row; pass -1 for none.
func StepsText(s Styles, steps render.StepsView, expanded Expansion, selected int, images ImageOptions) string {
	if len(steps.Rows) == 0 {
		return s.Muted.Render("No steps recorded") + "\n"
	}
	var b strings.Builder
	for i, row := range steps.Rows {
		marker := "  "
		label := row.Label
		if i == selected {
			marker = s.Selected.Render("> ")
			label = s.Selected.Render(label)
		}
		b.WriteString(marker + s.Icon(row.Badge) + " " + label + "\n")
		if !expanded(i) {
			continue
		}
		for _, block := range row.Body {
			b.WriteString(blockText(s, row, block, images))
		}
	}
	return b.String()
}

func blockText(s Styles, row render.StepRow, block render.Block, images ImageOptions) string {
	const pad = "      "
	switch block.Kind {
	case render.BlockError:
		return indent(s.ErrorText.Render(block.Text), pad) + "\n"
	case render.BlockImage:
		return indent(images.DescribeImage(block.Image, StepImageName(row.Index)), pad) + "\n"
	case render.BlockExtractedData:
		return indent("Extracted Data:", pad) + "\n" + indent(s.Code.Render(block.Text), pad+"  ") + "\n"
	default:
		return indent(block.Text, pad) + "\n"
	}
}

// DataText renders the extracted-data tab.
func DataText(s Styles, data render.DataView) string {
	if data.Empty {
		return s.Muted.Render(render.NoDataExtracted) + "\n"
	}
	var b strings.Builder
	for _, group := range data.Groups {
		b.WriteString(s.Title.Render(group.Key))
		b.WriteString("\n")
		for _, row := range group.Rows {
			b.WriteString(indent("- "+row, "  "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func tabLabel(view render.View, id render.TabID) string {
	for _, tab := range view.Tabs {
		if tab.ID == id {
			return tab.Label
		}
	}
	return string(id)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
