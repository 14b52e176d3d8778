package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSettings(t *testing.T) {
	data := []byte(`
prompt: "lisp> "
banner: false
history_file: .altlisp_history
prelude:
  - std.lspy
  - /abs/extra.lspy
float_precision: 2
`)
	s, err := ParseSettings(data, "/project/altlisp.yaml")
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.Prompt != "lisp> " {
		t.Errorf("Prompt = %q", s.Prompt)
	}
	if s.ShowBanner() {
		t.Error("ShowBanner() = true, want false")
	}
	if s.Precision() != 2 {
		t.Errorf("Precision() = %d, want 2", s.Precision())
	}
	if s.HistoryPath() != ".altlisp_history" {
		t.Errorf("HistoryPath() = %q", s.HistoryPath())
	}

	want := []string{filepath.Join("/project", "std.lspy"), "/abs/extra.lspy"}
	got := s.PreludePaths()
	if len(got) != len(want) {
		t.Fatalf("PreludePaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PreludePaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want %q", s.Prompt, DefaultPrompt)
	}
	if !s.ShowBanner() {
		t.Error("banner off by default")
	}
	if s.Precision() != 6 {
		t.Errorf("Precision() = %d, want 6", s.Precision())
	}
	if s.HistoryPath() != "" {
		t.Errorf("HistoryPath() = %q, want empty", s.HistoryPath())
	}
	if len(s.PreludePaths()) != 0 {
		t.Errorf("PreludePaths() = %v, want none", s.PreludePaths())
	}
}

func TestParseSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"negative precision", "float_precision: -1\n", "float_precision must not be negative"},
		{"empty prelude", "prelude:\n  - \"\"\n", "prelude[0]: empty path"},
		{"bad yaml", "prompt: [\n", "parsing altlisp.yaml"},
		{"wrong type", "banner: maybe\n", "parsing altlisp.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.data), "altlisp.yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestFindSettingsWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, "altlisp.yml")
	if err := os.WriteFile(path, []byte("prompt: \"> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindSettings(nested)
	if err != nil {
		t.Fatalf("FindSettings: %v", err)
	}
	if found != path {
		t.Errorf("FindSettings = %q, want %q", found, path)
	}

	s, err := Resolve("", nested)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.Prompt != "> " || s.Path != path {
		t.Errorf("Resolve loaded %+v", s)
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"), ".")
	if err == nil {
		t.Fatal("expected an error for a missing explicit settings file")
	}
}

func TestHistoryPathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	s := &Settings{HistoryFile: "~/.altlisp_history"}
	if got, want := s.HistoryPath(), filepath.Join(home, ".altlisp_history"); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}
}
