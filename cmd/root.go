/*
ARS - AWS Role Switcher
Copyright (c) 2024 Alessandro Gallo. All rights reserved.

Licensed under the Business Source License 1.1.
See LICENSE file for full terms.
*/

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ars/internal/aws"
	"ars/internal/config"
	"ars/internal/logger"
	"ars/internal/session"
	"ars/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ExitCancelled is the exit status after the user aborted a prompt.
const ExitCancelled = 130

var (
	version string
	commit  string
	date    string
)

var rootCmd = &cobra.Command{
	Use:   "ars [profile] [region]",
	Short: "Pick an AWS profile and region and print them as shell exports",
	Long: `ARS (AWS Role Switcher) reads the profiles of your AWS credentials file,
lets you pick one with autocompletion and prints the matching export
statements. High-privilege profiles (administrator, breakglass) are
highlighted in the menu.

The region prompt is skipped when AWS_DEFAULT_REGION is already set.

Examples:
  eval "$(ars)"
  eval "$(ars dev eu-west-1)"

  # or install the shell function once
  eval "$(ars init bash)"`,
	Args:              cobra.MaximumNArgs(2),
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:              runSwitch,
	ValidArgsFunction: completeArgs,
}

func runSwitch(cmd *cobra.Command, args []string) error {
	settings, err := config.Current()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, settings.LogLevel)

	opts := session.Options{
		CredentialsPath: settings.CredentialsPath,
		SkipRegion:      os.Getenv(session.RegionVar) != "",
		Engine:          settings.Engine,
		Fuzzy:           settings.Fuzzy,
		MenuHeight:      settings.MenuHeight,
	}
	if len(args) > 0 {
		opts.ProfileDefault = args[0]
	}
	if len(args) > 1 {
		opts.RegionDefault = args[1]
	}

	runner := session.New(newPrompter(cmd, logger), cmd.OutOrStdout(), logger)
	_, err = runner.Run(cmd.Context(), opts)
	return err
}

// newPrompter draws the interactive menu when stdin and stderr are
// terminals and falls back to reading lines otherwise.
func newPrompter(cmd *cobra.Command, logger *log.Logger) tui.Prompter {
	in, inOK := cmd.InOrStdin().(*os.File)
	out, outOK := cmd.ErrOrStderr().(*os.File)
	if inOK && outOK {
		return tui.NewPrompter(in, out, logger)
	}
	return tui.NewLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), logger)
}

func newLogger(cmd *cobra.Command, level string) *log.Logger {
	return logger.New(level, cmd.ErrOrStderr())
}

// completeArgs completes the profile, then the region.
func completeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		path, err := config.CredentialsPath()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		cfg, err := aws.LoadProfiles(path)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return cfg.Names(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return aws.GetAllRegions(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	return exitCode(rootCmd.Execute(), rootCmd.ErrOrStderr())
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, session.ErrCancelled):
		return ExitCancelled
	}
	fmt.Fprintln(stderr, tui.ErrorStyle.Render("✗ Error: "+err.Error()))
	return 1
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}
