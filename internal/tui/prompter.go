package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// maxHints bounds the suggestions printed after a rejected line.
const maxHints = 5

// Prompter asks a single question and returns the accepted answer, or
// ErrCancelled.
type Prompter interface {
	Prompt(ctx context.Context, p Prompt) (string, error)
}

// NewPrompter returns an interactive prompter when both in and out are
// terminals and a line based one otherwise.
func NewPrompter(in, out *os.File, logger *log.Logger) Prompter {
	if isTerminal(in) && isTerminal(out) {
		UseOutput(out)
		return &TeaPrompter{In: in, Out: out, Log: logger}
	}
	return NewLinePrompter(in, out, logger)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// UseOutput makes styles detect colour support on w instead of stdout, which
// is usually captured by the shell.
func UseOutput(w io.Writer) {
	lipgloss.DefaultRenderer().SetOutput(termenv.NewOutput(w))
}

// TeaPrompter runs a PromptModel as a bubbletea program.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
	Log *log.Logger
}

func (p *TeaPrompter) Prompt(ctx context.Context, pr Prompt) (string, error) {
	program := tea.NewProgram(
		NewPromptModel(pr, p.Log),
		tea.WithContext(ctx),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(PromptModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	if m.State() != Accepted {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

// LinePrompter reads one answer per line. It is used when there is no
// terminal to draw on.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	log *log.Logger
}

// NewLinePrompter reads answers from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer, logger *log.Logger) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, log: logger}
}

// Prompt reads lines until one validates. An empty line stands for the
// default; end of input cancels.
func (p *LinePrompter) Prompt(ctx context.Context, pr Prompt) (string, error) {
	for {
		if ctx.Err() != nil {
			return "", ErrCancelled
		}

		fmt.Fprint(p.out, PromptStyle.Render(pr.Label))
		if pr.Default != "" {
			fmt.Fprint(p.out, MutedStyle.Render("["+pr.Default+"] "))
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(p.out)
			return "", ErrCancelled
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			answer = pr.Default
		}

		verr := pr.validate(answer)
		if verr == nil {
			return answer, nil
		}

		if p.log != nil {
			p.log.Debug("input rejected", "input", answer, "err", verr)
		}
		fmt.Fprintln(p.out, ErrorStyle.Render("✗ "+verr.Error()))
		if hints := p.hints(pr, answer); hints != "" {
			fmt.Fprintln(p.out, InfoStyle.Render("  did you mean: "+hints))
		}
	}
}

func (p *LinePrompter) hints(pr Prompt, answer string) string {
	matches := pr.complete(answer, utf8.RuneCountInString(answer))
	values := make([]string, 0, maxHints)
	for _, m := range matches[:min(len(matches), maxHints)] {
		values = append(values, m.Candidate.Value)
	}
	return strings.Join(values, ", ")
}
