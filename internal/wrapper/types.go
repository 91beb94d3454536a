package wrapper

// Command is the executable the generated functions call.
const Command = "ars"

// Passthrough lists the arguments whose output is printed instead of
// evaluated by the shell function.
var Passthrough = []string{"profiles", "regions", "init", "help", "-h", "--help", "--version"}

// WrapperFactory creates wrapper generators
type WrapperFactory interface {
	CreateWrapper(shell string) (WrapperGenerator, error)
}

// WrapperGenerator produces the shell function that evaluates the export
// statements printed by ars.
type WrapperGenerator interface {
	Shell() SupportedShell

	// GenerateFunction returns the shell-specific function definition
	GenerateFunction() string

	// SetupLine is the line a user adds to their shell configuration file
	SetupLine() string
}

// SupportedShell represents a shell that a wrapper can be generated for
type SupportedShell string

const (
	ShellZsh        SupportedShell = "zsh"
	ShellBash       SupportedShell = "bash"
	ShellFish       SupportedShell = "fish"
	ShellPowerShell SupportedShell = "powershell"
)

// GetSupportedShells returns a list of all supported shells
func GetSupportedShells() []SupportedShell {
	return []SupportedShell{
		ShellZsh,
		ShellBash,
		ShellFish,
		ShellPowerShell,
	}
}

// IsValidShell checks if the given shell is supported
func IsValidShell(shell string) bool {
	for _, supported := range GetSupportedShells() {
		if string(supported) == shell {
			return true
		}
	}
	return false
}
