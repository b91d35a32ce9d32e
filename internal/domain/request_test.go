package domain

import (
	"errors"
	"testing"
)

func TestNewAutomationRequestTrims(t *testing.T) {
	req, err := NewAutomationRequest("\t Extract all news headlines from CNN \n", ModeExtract)
	if err != nil {
		t.Fatalf("NewAutomationRequest() error = %v", err)
	}
	if req.Command != "Extract all news headlines from CNN" {
		t.Fatalf("command = %q", req.Command)
	}
	body := req.Body()
	if body.Browser != "chrome" || body.Command != req.Command {
		t.Fatalf("body = %+v", body)
	}
}

func TestNewAutomationRequestRejectsBlank(t *testing.T) {
	for _, command := range []string{"", "   ", "\n\t"} {
		if _, err := NewAutomationRequest(command, ModeInteract); !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("NewAutomationRequest(%q) error = %v", command, err)
		}
	}
	if _, err := NewAutomationRequest("go", Mode("replay")); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"interact": ModeInteract, " EXTRACT ": ModeExtract, "Interact": ModeInteract}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseMode("scrape"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestModeEndpoint(t *testing.T) {
	if ModeInteract.Endpoint() != "/interact" || ModeExtract.Endpoint() != "/extract" {
		t.Fatalf("endpoints = %s %s", ModeInteract.Endpoint(), ModeExtract.Endpoint())
	}
}
