package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/altlisp/internal/config"
	"github.com/funvibe/altlisp/internal/evaluator"
	"github.com/funvibe/altlisp/internal/prettyprinter"
	"github.com/funvibe/altlisp/internal/reader"
)

const formatWidth = 80

type options struct {
	help       bool
	version    bool
	debug      bool
	configPath string
	expr       string
	hasExpr    bool
	autoPrint  bool
	format     bool
	files      []string
}

var errUsage = errors.New("usage")

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "-help", "--help", "help":
			opts.help = true
		case "-v", "-version", "--version":
			opts.version = true
		case "-debug", "--debug":
			opts.debug = true
		case "-config", "--config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a path", arg)
			}
			i++
			opts.configPath = args[i]
		case "-p":
			opts.autoPrint = true
		case "-fmt", "--fmt":
			opts.format = true
		case "-e", "-pe", "-ep":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires an expression", arg)
			}
			if arg != "-e" {
				opts.autoPrint = true
			}
			i++
			opts.expr = args[i]
			opts.hasExpr = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag %s: %w", arg, errUsage)
			}
			opts.files = append(opts.files, arg)
		}
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `%s

Usage:
  altlisp                    start the REPL (or run piped stdin)
  altlisp <file>...          load and run each file
  altlisp -e <expr>          evaluate an expression
  altlisp -pe <expr>         evaluate an expression and print the result
  altlisp -fmt <file>...     print files in canonical layout

Flags:
  -config <path>   settings file (default: nearest altlisp.yaml)
  -debug           echo each form before evaluating it
  -version         print the version
  -help            show this help
`, config.BannerTitle)
}

// Run is the entry point of the altlisp command.
func Run() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	os.Exit(Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Execute runs the command with the given arguments and streams and
// returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		if errors.Is(err, errUsage) {
			printUsage(stderr)
		}
		return 2
	}

	if opts.help {
		printUsage(stdout)
		return 0
	}
	if opts.version {
		fmt.Fprintln(stdout, "altlisp "+config.Version)
		return 0
	}

	if opts.format {
		return runFormat(opts.files, stdout, stderr)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	settings, err := config.Resolve(opts.configPath, cwd)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	session := NewSession(settings, stdout, stderr)
	session.debug = opts.debug || os.Getenv("DEBUG") == "1"

	for _, path := range settings.PreludePaths() {
		if err := session.LoadFile(path); err != nil {
			fmt.Fprintf(stderr, "Error: prelude: %s\n", err)
			return 1
		}
	}

	switch {
	case opts.hasExpr:
		return runEval(session, opts, stdout, stderr)
	case len(opts.files) > 0:
		return runFiles(session, opts.files, stderr)
	case !isInteractive(stdin):
		return runStdin(session, stdin, stderr)
	}

	if err := session.RunREPL(settings); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func runEval(session *Session, opts *options, stdout, stderr io.Writer) int {
	result, err := session.EvalLine(opts.expr, "<expr>")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if opts.autoPrint {
		fmt.Fprintln(stdout, session.Format(result))
	}
	if result.Type() == evaluator.ERROR_VAL {
		if !opts.autoPrint {
			fmt.Fprintln(stderr, session.Format(result))
		}
		return 1
	}
	return 0
}

func runFiles(session *Session, files []string, stderr io.Writer) int {
	for _, path := range files {
		if err := session.LoadFile(path); err != nil {
			fmt.Fprintf(stderr, "Error: Could not load Library %s\n", err)
			return 1
		}
	}
	return 0
}

func runFormat(files []string, stdout, stderr io.Writer) int {
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: -fmt requires at least one file")
		return 2
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return 1
		}
		program, err := reader.ParseText(string(data), path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, prettyprinter.Format(program, formatWidth))
	}
	return 0
}

func runStdin(session *Session, stdin io.Reader, stderr io.Writer) int {
	data, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: reading stdin: %s\n", err)
		return 1
	}
	if err := session.RunSource(string(data), "<stdin>"); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// isInteractive reports whether stdin is a terminal.
func isInteractive(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
