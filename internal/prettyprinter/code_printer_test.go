package prettyprinter_test

import (
	"testing"

	"github.com/funvibe/altlisp/internal/prettyprinter"
	"github.com/funvibe/altlisp/internal/reader"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"flat", "(+   1\n  2)", 80, "(+ 1 2)\n"},
		{"several forms", "(def {x} 1) x", 80, "(def {x} 1)\nx\n"},
		{"breaks long list", "(+ 1 (* 2 3))", 10, "(+\n  1\n  (* 2 3))\n"},
		{"nested break", "{a (b c d e f g)}", 8, "{a\n  (b\n    c\n    d\n    e\n    f\n    g)}\n"},
		{"string kept", `(print "a\tb")`, 80, "(print \"a\\tb\")\n"},
		{"top level comment", "; note\n(a)", 80, "; note\n(a)\n"},
		{"comment inside list", "(a ; note\n b)", 80, "(a\n  ; note\n  b)\n"},
		{"unlimited width", "(a b c d e f g h i j)", 0, "(a b c d e f g h i j)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := reader.ParseText(tt.input, "test.lspy")
			if err != nil {
				t.Fatalf("ParseText: %v", err)
			}
			if got := prettyprinter.Format(program, tt.width); got != tt.want {
				t.Errorf("Format(%q, %d)\n got: %q\nwant: %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatIsStable(t *testing.T) {
	input := "(def {fact} (\\ {n} {if (== n 0) {1} {* n (fact (- n 1))}}))"
	program, err := reader.ParseText(input, "test.lspy")
	if err != nil {
		t.Fatal(err)
	}
	once := prettyprinter.Format(program, 30)

	program, err = reader.ParseText(once, "test.lspy")
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if twice := prettyprinter.Format(program, 30); twice != once {
		t.Errorf("second pass changed layout\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}
