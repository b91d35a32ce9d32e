package filesystem

import (
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cases := map[string]string{
		"":                "",
		"   ":             "",
		"/var/log/a.log":  "/var/log/a.log",
		"~/.autopilot/x":  filepath.Join("/home/tester", ".autopilot/x"),
		"logs/../out.log": "out.log",
	}
	for in, want := range cases {
		if got := ExpandPath(in); got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", in, got, want)
		}
	}
}
