// Package session runs the profile and region prompts and renders the
// resulting environment as shell export statements.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ars/internal/aws"
	"ars/internal/complete"
	"ars/internal/logger"
	"ars/internal/tui"

	"github.com/charmbracelet/log"
)

// RegionVar is exported with the chosen region.
const RegionVar = "AWS_DEFAULT_REGION"

var (
	// ErrCancelled is returned when the user aborts either prompt.
	ErrCancelled = tui.ErrCancelled

	ErrUnknownProfile = errors.New("not a valid profile name")
	ErrEmptyRegion    = errors.New("region must not be empty")
)

// Options configures one run.
type Options struct {
	ProfileDefault  string
	RegionDefault   string
	CredentialsPath string
	// SkipRegion disables the region prompt, usually because the region is
	// already set in the environment.
	SkipRegion bool
	Engine     complete.Engine
	Fuzzy      bool
	MenuHeight int
}

// Result is the outcome of an accepted run.
type Result struct {
	Profile aws.Profile
	Region  string
}

// Lines returns the export statements for the result.
func (r Result) Lines() []string {
	var lines []string
	for _, v := range r.Profile.Exports() {
		lines = append(lines, v.ExportLine())
	}
	if r.Region != "" {
		lines = append(lines, aws.Variable{Name: RegionVar, Value: r.Region}.ExportLine())
	}
	return lines
}

// Runner asks for a profile and a region and writes the exports to Out.
type Runner struct {
	Prompter tui.Prompter
	Out      io.Writer
	Log      *log.Logger
}

// New creates a Runner. A nil logger discards everything.
func New(prompter tui.Prompter, out io.Writer, l *log.Logger) *Runner {
	if l == nil {
		l = logger.Discard()
	}
	return &Runner{Prompter: prompter, Out: out, Log: l}
}

// Run loads the credentials file and runs the prompts. Nothing is written to
// Out unless every prompt was accepted.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	cfg, err := aws.LoadProfiles(opts.CredentialsPath)
	if err != nil {
		return Result{}, err
	}
	if !cfg.Found {
		r.Log.Warn("credentials file not found, no profile can be selected", "path", cfg.Path)
	}
	r.Log.Debug("loaded profiles", "path", cfg.Path, "count", cfg.Len())

	res, err := r.ask(ctx, cfg, opts)
	if err != nil {
		return Result{}, err
	}

	var b strings.Builder
	for _, line := range res.Lines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if _, err := io.WriteString(r.Out, b.String()); err != nil {
		return Result{}, fmt.Errorf("failed to write exports: %w", err)
	}
	return res, nil
}

func (r *Runner) ask(ctx context.Context, cfg *aws.ProfileConfig, opts Options) (Result, error) {
	name, err := r.Prompter.Prompt(ctx, tui.Prompt{
		Label:      "Enter Profile: ",
		Default:    opts.ProfileDefault,
		Matcher:    matcher(complete.ProfileSource(cfg), opts),
		Validate:   tui.OneOf(cfg.Has, ErrUnknownProfile),
		MenuHeight: opts.MenuHeight,
	})
	if err != nil {
		return Result{}, promptError("profile", err)
	}

	profile, _ := cfg.Get(name)
	res := Result{Profile: profile}
	r.Log.Info("profile selected", "profile", name, "session", profile.HasSessionToken())

	if opts.SkipRegion {
		return res, nil
	}

	res.Region, err = r.Prompter.Prompt(ctx, tui.Prompt{
		Label:      "Enter Region: ",
		Default:    opts.RegionDefault,
		Matcher:    matcher(complete.RegionSource(), opts),
		Validate:   tui.NonEmpty(ErrEmptyRegion),
		MenuHeight: opts.MenuHeight,
	})
	if err != nil {
		return Result{}, promptError("region", err)
	}
	if !aws.IsKnownRegion(res.Region) {
		r.Log.Warn("region is not in the known list", "region", res.Region)
	}
	return res, nil
}

func matcher(source complete.Source, opts Options) complete.CandidateMatcher {
	if opts.Fuzzy {
		return complete.NewFuzzyMatcher(source, opts.Engine)
	}
	return complete.NewWordMatcher(source, opts.Engine)
}

func promptError(what string, err error) error {
	if errors.Is(err, ErrCancelled) {
		return fmt.Errorf("%s prompt: %w", what, ErrCancelled)
	}
	return fmt.Errorf("%s prompt failed: %w", what, err)
}
