package helpers

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/autopilot-go/internal/domain"
)

func TestSetAndTraverseNestedMap(t *testing.T) {
	root := map[string]interface{}{"backend": map[string]interface{}{"base_url": "http://a"}}

	if !SetNestedMapValue(root, []string{"backend", "headers", "X-Team"}, "qa") {
		t.Fatal("SetNestedMapValue returned false")
	}
	got, ok := TraverseNestedMap(root, []string{"backend", "headers", "X-Team"})
	if !ok || got != "qa" {
		t.Fatalf("TraverseNestedMap = %v, %v", got, ok)
	}
	if _, ok := TraverseNestedMap(root, []string{"backend", "missing"}); ok {
		t.Fatal("expected missing key")
	}
	if SetNestedMapValue(root, nil, "x") {
		t.Fatal("empty path must fail")
	}
}

func TestConfigMapRoundTripKeepsYAMLNames(t *testing.T) {
	cfg := domain.Config{
		ConfigFormatVersion: "1",
		Backend:             domain.BackendSettings{BaseURL: "http://localhost:5000"},
		UI:                  domain.UISettings{DefaultMode: "extract"},
	}
	cfgMap, err := ConfigToMap(cfg)
	if err != nil {
		t.Fatalf("ConfigToMap: %v", err)
	}
	if value, ok := TraverseNestedMap(cfgMap, []string{"ui", "default_mode"}); !ok || value != "extract" {
		t.Fatalf("ui.default_mode = %v, %v", value, ok)
	}

	SetNestedMapValue(cfgMap, []string{"screenshots", "max_width"}, ParseYAMLValue("800"))
	updated, err := MapToConfig(cfgMap)
	if err != nil {
		t.Fatalf("MapToConfig: %v", err)
	}
	want := cfg
	want.Screenshots.MaxWidth = 800
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptForYesNo(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := PromptForYesNo(&out, bufio.NewReader(strings.NewReader(tt.input)), "Reset?", tt.def)
		if got != tt.want {
			t.Fatalf("PromptForYesNo(%q, %v) = %v", tt.input, tt.def, got)
		}
		if !strings.HasPrefix(out.String(), "Reset? [") {
			t.Fatalf("prompt = %q", out.String())
		}
	}
}
