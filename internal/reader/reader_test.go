package reader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/funvibe/altlisp/internal/evaluator"
	"github.com/funvibe/altlisp/internal/reader"
)

func TestReadString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "()"},
		{"1 2.5 x", "(1 2.500000 x)"},
		{"(+ 1 2)", "((+ 1 2))"},
		{"{a {b}} ; trailing comment", "({a {b}})"},
		{`"a\nb"`, `("a\nb")`},
		{"(a ; inner\n b)", "((a b))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := reader.ReadString(tt.input, "test.lspy")
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if s := evaluator.DefaultPrinter.Print(got); s != tt.want {
				t.Errorf("ReadString(%q) = %s, want %s", tt.input, s, tt.want)
			}
		})
	}
}

func TestInvalidNumber(t *testing.T) {
	got, err := reader.ReadString("99999999999999999999", "test.lspy")
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if len(got.Cells) != 1 {
		t.Fatalf("got %d forms, want 1", len(got.Cells))
	}
	if s := evaluator.DefaultPrinter.Print(got.Cells[0]); s != "Error: Invalid Number." {
		t.Errorf("got %s, want Error: Invalid Number.", s)
	}
}

func TestParseError(t *testing.T) {
	_, err := reader.ReadString("(+ 1 2", "broken.lspy")
	if err == nil {
		t.Fatal("expected an error")
	}
	var perr *reader.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *reader.ParseError", err)
	}
	if len(perr.Diagnostics) == 0 {
		t.Fatal("ParseError has no diagnostics")
	}
	if !strings.HasPrefix(err.Error(), "broken.lspy:") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestNulByteIsReported(t *testing.T) {
	_, err := reader.ReadString("(+ 1 2)\x00(undefined-call)", "nul.lspy")
	var perr *reader.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want a ParseError", err)
	}
	if got := perr.Diagnostics[0].Error(); got != `nul.lspy:1:8: L001: unexpected character \x00` {
		t.Errorf("diagnostic = %q", got)
	}
}

func TestParseTextKeepsComments(t *testing.T) {
	program, err := reader.ParseText("; header\n(a b)\n", "test.lspy")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(program.Expressions) != 2 {
		t.Errorf("got %d expressions, want 2", len(program.Expressions))
	}
}

func tempSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), uuid.NewString()+".lspy")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderLoadFile(t *testing.T) {
	path := tempSource(t, "(def {x} 1)\n; comment\n{1 2}\n")

	forms, err := reader.NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
	if s := evaluator.DefaultPrinter.Print(forms[1]); s != "{1 2}" {
		t.Errorf("second form = %s, want {1 2}", s)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), uuid.NewString()+".lspy")
	_, err := reader.NewLoader().LoadFile(path)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestLoaderParseError(t *testing.T) {
	path := tempSource(t, "(def {x} 1))")
	_, err := reader.NewLoader().LoadFile(path)
	var perr *reader.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a ParseError", err)
	}
}
