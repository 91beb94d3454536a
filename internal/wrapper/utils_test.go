package wrapper

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestNormalizeShellName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"zsh", "zsh"},
		{"zsh5", "zsh"},
		{"bash", "bash"},
		{"bash4", "bash"},
		{"bash5", "bash"},
		{"fish", "fish"},
		{"powershell", "powershell"},
		{"pwsh", "powershell"},
		{"powershell.exe", "powershell"},
		{"pwsh.exe", "powershell"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := normalizeShellName(tt.input)
			if result != tt.expected {
				t.Errorf("normalizeShellName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// clearShellEnv blanks every variable the detection looks at.
func clearShellEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SHELL", "ZSH_VERSION", "ZSH_NAME", "BASH_VERSION", "BASH", "FISH_VERSION", "PSModulePath", "PSHOME"} {
		t.Setenv(key, "")
	}
}

func TestDetectShellFromEnvVars(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected string
	}{
		{"zsh version", map[string]string{"ZSH_VERSION": "5.8"}, "zsh"},
		{"zsh name", map[string]string{"ZSH_NAME": "zsh"}, "zsh"},
		{"bash version", map[string]string{"BASH_VERSION": "5.1.8"}, "bash"},
		{"bash path", map[string]string{"BASH": "/bin/bash"}, "bash"},
		{"fish version", map[string]string{"FISH_VERSION": "3.3.1"}, "fish"},
		{"no shell vars", map[string]string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearShellEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			result := detectShellFromEnvVars()
			if result != tt.expected {
				t.Errorf("detectShellFromEnvVars() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDetectPowerShell(t *testing.T) {
	clearShellEnv(t)
	if detectPowerShell() {
		t.Error("Expected no PowerShell without indicators")
	}

	t.Setenv("PSModulePath", "/some/path")
	if !detectPowerShell() {
		t.Error("Expected PowerShell when PSModulePath is set")
	}
}

func TestDetectCurrentShell(t *testing.T) {
	tests := []struct {
		name     string
		shellEnv string
		extra    map[string]string
		expected string
		wantErr  bool
	}{
		{name: "from SHELL", shellEnv: "/bin/bash", expected: "bash"},
		{name: "versioned binary", shellEnv: "/usr/local/bin/zsh5", expected: "zsh"},
		{name: "unsupported SHELL falls back to env vars", shellEnv: "/bin/tcsh", extra: map[string]string{"FISH_VERSION": "3.7"}, expected: "fish"},
		{name: "nothing to go on", shellEnv: "/bin/tcsh", wantErr: runtime.GOOS != "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearShellEnv(t)
			t.Setenv("SHELL", tt.shellEnv)
			for key, value := range tt.extra {
				t.Setenv(key, value)
			}

			shell, err := DetectCurrentShell()
			if tt.wantErr {
				if !errors.Is(err, ErrShellDetectionFailed) {
					t.Errorf("Expected ErrShellDetectionFailed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if shell != tt.expected {
				t.Errorf("DetectCurrentShell() = %q, want %q", shell, tt.expected)
			}
		})
	}
}

func TestGetDefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	for _, shell := range GetSupportedShells() {
		path, err := GetDefaultConfigFile(shell)
		if err != nil {
			t.Errorf("GetDefaultConfigFile(%s) failed: %v", shell, err)
			continue
		}
		if !strings.HasPrefix(path, home) {
			t.Errorf("GetDefaultConfigFile(%s) = %q, expected it under %q", shell, path, home)
		}
	}

	bashrc, _ := GetDefaultConfigFile(ShellBash)
	if bashrc != filepath.Join(home, ".bashrc") {
		t.Errorf("Unexpected bash config file %q", bashrc)
	}

	if _, err := GetDefaultConfigFile("tcsh"); !errors.Is(err, ErrShellNotSupported) {
		t.Errorf("Expected ErrShellNotSupported, got %v", err)
	}
}
