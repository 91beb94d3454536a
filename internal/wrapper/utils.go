package wrapper

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DetectCurrentShell attempts to detect the current shell from environment variables
func DetectCurrentShell() (string, error) {
	// SHELL on Unix-like systems
	if shell := os.Getenv("SHELL"); shell != "" {
		shellName := normalizeShellName(filepath.Base(shell))
		if IsValidShell(shellName) {
			return shellName, nil
		}
	}

	if runtime.GOOS == "windows" && detectPowerShell() {
		return string(ShellPowerShell), nil
	}

	if shell := detectShellFromEnvVars(); shell != "" {
		return shell, nil
	}

	return "", fmt.Errorf("%w: please specify the shell explicitly", ErrShellDetectionFailed)
}

// normalizeShellName converts shell executable names to standard shell names
func normalizeShellName(shellName string) string {
	shellName = strings.TrimSuffix(shellName, ".exe")

	switch strings.ToLower(shellName) {
	case "zsh", "zsh5":
		return string(ShellZsh)
	case "bash", "bash4", "bash5":
		return string(ShellBash)
	case "fish":
		return string(ShellFish)
	case "powershell", "pwsh":
		return string(ShellPowerShell)
	default:
		return shellName
	}
}

// detectPowerShell checks for PowerShell-specific environment indicators
func detectPowerShell() bool {
	return os.Getenv("PSModulePath") != "" || os.Getenv("PSHOME") != ""
}

// detectShellFromEnvVars checks shell-specific environment variables
func detectShellFromEnvVars() string {
	if os.Getenv("ZSH_VERSION") != "" || os.Getenv("ZSH_NAME") != "" {
		return string(ShellZsh)
	}
	if os.Getenv("BASH_VERSION") != "" || os.Getenv("BASH") != "" {
		return string(ShellBash)
	}
	if os.Getenv("FISH_VERSION") != "" {
		return string(ShellFish)
	}
	return ""
}

// GetDefaultConfigFile returns the configuration file the setup line belongs in.
func GetDefaultConfigFile(shell SupportedShell) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch shell {
	case ShellZsh:
		return filepath.Join(home, ".zshrc"), nil
	case ShellBash:
		return filepath.Join(home, ".bashrc"), nil
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "config.fish"), nil
	case ShellPowerShell:
		if runtime.GOOS == "windows" {
			return filepath.Join(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1"), nil
		}
		return filepath.Join(home, ".config", "powershell", "Microsoft.PowerShell_profile.ps1"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrShellNotSupported, shell)
	}
}
