package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesCommand(t *testing.T) {
	setup(t, testCredentials+`
[empty]
region = eu-west-1
`)

	stdout, stderr, err := execute(t, "", "profiles")
	require.NoError(t, err)
	assert.Contains(t, stderr, "3 profiles in ")

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "PROFILE")

	assert.True(t, strings.HasPrefix(lines[1], "dev"))
	assert.Contains(t, lines[1], "normal")
	assert.Contains(t, lines[1], "static")
	assert.Contains(t, lines[1], "AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")

	assert.True(t, strings.HasPrefix(lines[2], "breakglass-prod"))
	assert.Contains(t, lines[2], "warning")
	assert.Contains(t, lines[2], "session")

	assert.True(t, strings.HasPrefix(lines[3], "empty"))

	// values are never printed
	assert.NotContains(t, stdout, "AKIA")
	assert.NotContains(t, stdout, "TOPSECRET")
}

func TestProfilesCommand_MissingFile(t *testing.T) {
	setup(t, "")

	stdout, stderr, err := execute(t, "", "profiles")

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No credentials file found")
}

func TestProfilesCommand_NoProfiles(t *testing.T) {
	setup(t, "# nothing here\n")

	stdout, stderr, err := execute(t, "", "profiles")

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No profiles found")
}
