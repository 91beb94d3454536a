package cmd

import (
	"slices"
	"testing"

	"ars/internal/wrapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"ars() {", `eval "$__ars_exports"`, `#   eval "$(command ars init bash)"`, ".bashrc"}},
		{"zsh", []string{"ars() {", ".zshrc"}},
		{"fish", []string{"function ars", "| source"}},
		{"powershell", []string{"function ars {", "Env:"}},
		{"BASH", []string{"ars() {"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			setup(t, "")

			stdout, _, err := execute(t, "", "init", tt.shell)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
		})
	}
}

func TestInitCommand_DetectsShell(t *testing.T) {
	setup(t, "")
	t.Setenv("SHELL", "/usr/bin/fish")

	stdout, _, err := execute(t, "", "init")

	require.NoError(t, err)
	assert.Contains(t, stdout, "function ars")
}

func TestInitCommand_UnsupportedShell(t *testing.T) {
	setup(t, "")

	stdout, stderr, err := execute(t, "", "init", "tcsh")

	require.Error(t, err)
	assert.ErrorIs(t, err, wrapper.ErrShellNotSupported)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Supported shells: zsh, bash, fish, powershell")
}

func TestPassthroughCoversSubcommands(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Hidden {
			continue
		}
		assert.True(t, slices.Contains(wrapper.Passthrough, c.Name()),
			"shell functions must not eval the output of %q", c.Name())
	}
}
