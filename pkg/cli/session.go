package cli

import (
	"fmt"
	"io"

	"github.com/funvibe/altlisp/internal/config"
	"github.com/funvibe/altlisp/internal/evaluator"
	"github.com/funvibe/altlisp/internal/reader"
)

// Session is one interpreter instance: a root environment and the
// evaluator bound to it.
type Session struct {
	eval   *evaluator.Evaluator
	env    *evaluator.Environment
	loader *reader.Loader
	stdout io.Writer
	stderr io.Writer
	debug  bool
}

func NewSession(settings *config.Settings, stdout, stderr io.Writer) *Session {
	loader := reader.NewLoader()
	eval := evaluator.New()
	eval.Out = stdout
	eval.Loader = loader
	eval.Printer = &evaluator.Printer{FloatPrecision: settings.Precision()}

	return &Session{
		eval:   eval,
		env:    evaluator.MakeRootEnvironment(),
		loader: loader,
		stdout: stdout,
		stderr: stderr,
	}
}

// EvalLine evaluates source as one S-expression of its forms, the way the
// REPL treats a line.
func (s *Session) EvalLine(source, path string) (evaluator.Value, error) {
	program, err := reader.ReadString(source, path)
	if err != nil {
		return nil, err
	}
	if s.debug {
		fmt.Fprintf(s.stderr, "[debug] %s\n", s.eval.Format(program))
	}
	return s.eval.Eval(s.env, program), nil
}

// RunSource evaluates each top-level form separately and prints Error
// results, like load.
func (s *Session) RunSource(source, path string) error {
	program, err := reader.ReadString(source, path)
	if err != nil {
		return err
	}
	s.runForms(program.Cells)
	return nil
}

// LoadFile runs a file with load semantics.
func (s *Session) LoadFile(path string) error {
	forms, err := s.loader.LoadFile(path)
	if err != nil {
		return err
	}
	s.runForms(forms)
	return nil
}

func (s *Session) runForms(forms []evaluator.Value) {
	for _, form := range forms {
		if s.debug {
			fmt.Fprintf(s.stderr, "[debug] %s\n", s.eval.Format(form))
		}
		if res := s.eval.Eval(s.env, form); res.Type() == evaluator.ERROR_VAL {
			fmt.Fprintln(s.stdout, s.eval.Format(res))
		}
	}
}

func (s *Session) Format(v evaluator.Value) string {
	return s.eval.Format(v)
}
