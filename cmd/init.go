package cmd

import (
	"errors"
	"fmt"
	"strings"

	"ars/internal/wrapper"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [shell]",
	Short: "Print a shell function that applies the exports directly",
	Long: `Prints a shell function named ars that runs the real binary and evaluates
its output, so that typing 'ars' switches the current shell.

Supported shells: zsh, bash, fish, powershell. The shell is detected from the
environment when omitted.

Examples:
  # bash / zsh
  eval "$(command ars init bash)"

  # fish
  command ars init fish | source

  # PowerShell
  Invoke-Expression (& ars init powershell | Out-String)`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: getSupportedShellNames(),
	RunE:      runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	factory := wrapper.NewFactory()

	shell, err := determineShell(factory, args)
	if err != nil {
		return handleWrapperError(cmd, err)
	}

	gen, err := factory.CreateWrapper(shell)
	if err != nil {
		return handleWrapperError(cmd, wrapper.NewWrapperError(shell, "init", err))
	}

	out := cmd.OutOrStdout()
	if file, err := wrapper.GetDefaultConfigFile(gen.Shell()); err == nil {
		fmt.Fprintf(out, "# Add this line to %s:\n", file)
	}
	fmt.Fprintf(out, "#   %s\n", gen.SetupLine())
	fmt.Fprint(out, gen.GenerateFunction())
	return nil
}

func determineShell(factory *wrapper.Factory, args []string) (string, error) {
	if len(args) > 0 {
		shell := strings.ToLower(args[0])
		if !wrapper.IsValidShell(shell) {
			return "", wrapper.NewWrapperError(shell, "init", wrapper.ErrShellNotSupported)
		}
		return shell, nil
	}

	shell, err := factory.DetectShell()
	if err != nil {
		return "", wrapper.NewWrapperError("", "init", err)
	}
	return shell, nil
}

func getSupportedShellNames() []string {
	shells := wrapper.GetSupportedShells()
	names := make([]string, len(shells))
	for i, shell := range shells {
		names[i] = string(shell)
	}
	return names
}

// handleWrapperError prints the suggestions of a wrapper error to stderr.
func handleWrapperError(cmd *cobra.Command, err error) error {
	var wrapperErr *wrapper.WrapperError
	if errors.As(err, &wrapperErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), wrapperErr.GetUserFriendlyMessage())
		fmt.Fprintln(cmd.ErrOrStderr())
		return fmt.Errorf("cannot generate shell function: %w", wrapperErr.Err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(initCmd)
}
