package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/autopilot-go/internal/domain"
)

func decode(t *testing.T, body string) domain.AutomationResult {
	t.Helper()
	result, err := domain.DecodeResult([]byte(body))
	if err != nil {
		t.Fatalf("DecodeResult() error = %v", err)
	}
	return result
}

func tabIDs(v View) []TabID {
	ids := make([]TabID, 0, len(v.Tabs))
	for _, tab := range v.Tabs {
		ids = append(ids, tab.ID)
	}
	return ids
}

func TestRenderInteractScenario(t *testing.T) {
	result := decode(t, `{
		"status": "success",
		"original_command": "Open Bing, search for cute puppies",
		"steps_results": [
			{"action": "navigate", "status": "success"},
			{"action": "search", "status": "success", "details": "typed query"}
		]
	}`)

	view := Render(result, domain.ModeInteract)

	if view.Badge != (Classification{Icon: IconCheck, Label: "success", Color: ColorGreen}) {
		t.Fatalf("badge = %+v", view.Badge)
	}
	if view.Title != "Automation Results" {
		t.Fatalf("title = %q", view.Title)
	}
	if diff := cmp.Diff([]TabID{TabSummary, TabSteps, TabRaw}, tabIDs(view)); diff != "" {
		t.Fatalf("tabs (-want +got):\n%s", diff)
	}
	if view.Data != nil {
		t.Fatal("extracted data tab must not be offered in interact mode")
	}

	success := Classify("success")
	want := []StepRow{
		{Index: 1, Label: "Step 1: navigate", Action: "navigate", Badge: success},
		{Index: 2, Label: "Step 2: search", Action: "search", Badge: success,
			Body: []Block{{Kind: BlockDetails, Text: "typed query"}}},
	}
	if diff := cmp.Diff(want, view.Steps.Rows); diff != "" {
		t.Fatalf("steps (-want +got):\n%s", diff)
	}
}

func TestRenderExtractScenario(t *testing.T) {
	result := decode(t, `{"status":"partial_success","original_command":"Extract all news headlines from CNN","data":{"headlines":["A","B"]}}`)

	view := Render(result, domain.ModeExtract)

	if view.Badge != (Classification{Icon: IconWarning, Label: "Partial Success", Color: ColorYellow}) {
		t.Fatalf("badge = %+v", view.Badge)
	}
	if diff := cmp.Diff([]TabID{TabSummary, TabData, TabRaw}, tabIDs(view)); diff != "" {
		t.Fatalf("tabs (-want +got):\n%s", diff)
	}
	want := &DataView{Groups: []DataGroup{{Key: "headlines", Rows: []string{"A", "B"}}}}
	if diff := cmp.Diff(want, view.Data); diff != "" {
		t.Fatalf("data (-want +got):\n%s", diff)
	}
	if view.Steps != nil {
		t.Fatal("steps tab must not be offered in extract mode")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	result := decode(t, `{"status":"weird","original_command":"c","message":"m","data":{"b":[1,{"z":1,"a":2}],"a":"x"},"steps_results":[{"action":"a","extracted_data":{"k":[1,2]}}]}`)
	for _, mode := range domain.Modes {
		first := Render(result, mode)
		second := Render(result, mode)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("render not idempotent for %s:\n%s", mode, diff)
		}
	}
}

func TestRenderSummaryOrderAndOmission(t *testing.T) {
	full := decode(t, `{"screenshot":"U0NS","final_screenshot":"RklOQUw=","description":"d","message":"m","status":"success","original_command":"cmd"}`)
	view := Render(full, domain.ModeInteract)

	var kinds []SectionKind
	for _, section := range view.Summary.Sections {
		kinds = append(kinds, section.Kind)
	}
	want := []SectionKind{SectionMessage, SectionDescription, SectionFinalScreenshot, SectionScreenshot}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("section order (-want +got):\n%s", diff)
	}
	if view.Summary.Command != "cmd" {
		t.Fatalf("command = %q", view.Summary.Command)
	}

	fields := map[string]SectionKind{
		"message":          SectionMessage,
		"description":      SectionDescription,
		"final_screenshot": SectionFinalScreenshot,
		"screenshot":       SectionScreenshot,
	}
	for field, kind := range fields {
		body := removeField(t, `{"status":"success","original_command":"cmd","message":"m","description":"d","final_screenshot":"RklOQUw=","screenshot":"U0NS"}`, field)
		view := Render(decode(t, body), domain.ModeInteract)
		if len(view.Summary.Sections) != 3 {
			t.Errorf("without %s: expected 3 sections, got %d", field, len(view.Summary.Sections))
		}
		for _, section := range view.Summary.Sections {
			if section.Kind == kind {
				t.Errorf("without %s: section still rendered", field)
			}
		}
		if strings.Contains(view.Raw, `"`+field+`"`) {
			t.Errorf("without %s: raw view still mentions it", field)
		}
		if !strings.Contains(view.Raw, `"original_command": "cmd"`) {
			t.Errorf("without %s: raw view lost other fields:\n%s", field, view.Raw)
		}
	}
}

// removeField drops one top-level member from a flat JSON object literal.
func removeField(t *testing.T, body, field string) string {
	t.Helper()
	parts := strings.Split(strings.Trim(body, "{}"), ",")
	kept := parts[:0]
	for _, part := range parts {
		if strings.HasPrefix(part, `"`+field+`"`) {
			continue
		}
		kept = append(kept, part)
	}
	return "{" + strings.Join(kept, ",") + "}"
}

func TestRenderStepBodyBlocksInOrder(t *testing.T) {
	result := decode(t, `{"status":"partial_success","steps_results":[
		{"extracted_data":{"b":1,"a":[true,null]},"image":"aW1n","error":"Element not found","details":"clicked","status":"error","action":"click"},
		{"action":"wait","status":"success","extracted_data":null}
	]}`)

	rows := Render(result, domain.ModeInteract).Steps.Rows
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := []Block{
		{Kind: BlockDetails, Text: "clicked"},
		{Kind: BlockError, Text: "Error: Element not found"},
		{Kind: BlockImage, Image: &Image{Alt: "Step 1 result", Base64: "aW1n"}},
		{Kind: BlockExtractedData, Text: "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}"},
	}
	if diff := cmp.Diff(want, rows[0].Body); diff != "" {
		t.Fatalf("step 1 body (-want +got):\n%s", diff)
	}
	if rows[0].Badge.Color != ColorRed {
		t.Fatalf("step badge = %+v", rows[0].Badge)
	}
	if len(rows[1].Body) != 0 {
		t.Fatalf("null extracted_data must be omitted, got %+v", rows[1].Body)
	}
}

func TestRenderStepsOrderPreserved(t *testing.T) {
	result := decode(t, `{"status":"success","steps_results":[{"action":"s0"},{"action":"s1"},{"action":"s2"}]}`)
	rows := Render(result, domain.ModeInteract).Steps.Rows

	var labels []string
	for _, row := range rows {
		labels = append(labels, row.Label)
	}
	want := []string{"Step 1: s0", "Step 2: s1", "Step 3: s2"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
}

func TestRenderInteractWithoutSteps(t *testing.T) {
	for _, body := range []string{
		`{"status":"error","original_command":"x","message":"boom"}`,
		`{"status":"success","steps_results":[]}`,
		`{"status":"success","steps_results":null}`,
		`{"status":"success","steps_results":"not a list"}`,
		`{"status":"success","data":{"a":["1"]}}`,
	} {
		view := Render(decode(t, body), domain.ModeInteract)
		if view.Steps == nil {
			t.Fatalf("%s: steps view missing", body)
		}
		if len(view.Steps.Rows) != 0 {
			t.Fatalf("%s: expected no rows, got %d", body, len(view.Steps.Rows))
		}
	}
}

func TestRenderExtractWithoutData(t *testing.T) {
	for _, body := range []string{
		`{"status":"error","original_command":"x","message":"boom"}`,
		`{"status":"success","data":null}`,
		`{"status":"success","steps_results":[{"action":"a"}]}`,
	} {
		view := Render(decode(t, body), domain.ModeExtract)
		if view.Data == nil || !view.Data.Empty || len(view.Data.Groups) != 0 {
			t.Fatalf("%s: expected no-data state, got %+v", body, view.Data)
		}
	}
}

func TestRenderExtractedDataRows(t *testing.T) {
	result := decode(t, `{"status":"success","data":{
		"zeta": ["A", 2, true, null, {"y":1,"x":[2]}, ["n"]],
		"alpha": "single headline",
		"count": 3,
		"empty": [],
		"nested": {"b": {"c": [1]}, "a": 0},
		"missing": null
	}}`)

	got := Render(result, domain.ModeExtract).Data
	want := &DataView{Groups: []DataGroup{
		{Key: "zeta", Rows: []string{"A", "2", "true", "null", `{"y":1,"x":[2]}`, `["n"]`}},
		{Key: "alpha", Rows: []string{`"single headline"`}},
		{Key: "count", Rows: []string{"3"}},
		{Key: "empty", Rows: []string{}},
		{Key: "nested", Rows: []string{`{"b":{"c":[1]},"a":0}`}},
		{Key: "missing", Rows: []string{"null"}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("data (-want +got):\n%s", diff)
	}
}

func TestRenderUnknownModeOffersSummaryAndRaw(t *testing.T) {
	view := Render(decode(t, `{"status":"success"}`), domain.Mode("replay"))
	if diff := cmp.Diff([]TabID{TabSummary, TabRaw}, tabIDs(view)); diff != "" {
		t.Fatalf("tabs (-want +got):\n%s", diff)
	}
	if view.Steps != nil || view.Data != nil {
		t.Fatal("no detail tab expected")
	}
}

func TestRenderRawPreservesPayload(t *testing.T) {
	body := `{"zz":1,"status":"success","generated_plan":{"url":"https://cnn.com","selectors":{"headlines":"h3"}},"aa":[1,2]}`
	view := Render(decode(t, body), domain.ModeExtract)

	want := `{
  "zz": 1,
  "status": "success",
  "generated_plan": {
    "url": "https://cnn.com",
    "selectors": {
      "headlines": "h3"
    }
  },
  "aa": [
    1,
    2
  ]
}`
	if view.Raw != want {
		t.Fatalf("raw view mismatch:\n%s", view.Raw)
	}
}

func TestRenderNonObjectPayload(t *testing.T) {
	view := Render(decode(t, `["not", "an", "object"]`), domain.ModeExtract)
	if view.Badge.Color != ColorNeutral || view.Badge.Label != "" {
		t.Fatalf("badge = %+v", view.Badge)
	}
	if view.Summary.Command != "" || len(view.Summary.Sections) != 0 {
		t.Fatalf("summary = %+v", view.Summary)
	}
	if !view.Data.Empty {
		t.Fatal("expected no data state")
	}
	if !strings.Contains(view.Raw, `"object"`) {
		t.Fatalf("raw = %s", view.Raw)
	}
}

func TestViewHasTab(t *testing.T) {
	view := Render(decode(t, `{}`), domain.ModeInteract)
	if !view.HasTab(TabSteps) || view.HasTab(TabData) || !view.HasTab(TabRaw) {
		t.Fatalf("unexpected tabs %+v", view.Tabs)
	}
}

func TestParseTab(t *testing.T) {
	if id, err := ParseTab(" Raw "); err != nil || id != TabRaw {
		t.Fatalf("ParseTab(Raw) = %q, %v", id, err)
	}
	if _, err := ParseTab("all"); err == nil {
		t.Fatal("expected error for all")
	}
}
