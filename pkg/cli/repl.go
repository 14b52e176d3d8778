package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/altlisp/internal/config"
)

// RunREPL reads lines until Ctrl-C or end of input. Each line is evaluated
// as one S-expression and its result printed.
func (s *Session) RunREPL(settings *config.Settings) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := settings.HistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	if settings.ShowBanner() {
		fmt.Fprintln(s.stdout, config.BannerTitle)
		fmt.Fprintf(s.stdout, "%s\n\n", config.BannerHint)
	}

	for {
		input, err := line.Prompt(settings.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(s.stdout)
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		s.replLine(input)
	}

	if historyPath != "" {
		if err := saveHistory(line, historyPath); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) replLine(input string) {
	result, err := s.EvalLine(input, "<stdin>")
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		return
	}
	fmt.Fprintln(s.stdout, s.Format(result))
}

func saveHistory(line *liner.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing history %s: %w", path, err)
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		return fmt.Errorf("writing history %s: %w", path, err)
	}
	return nil
}
