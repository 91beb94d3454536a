package wrapper

import (
	"fmt"
)

// Factory creates WrapperGenerator instances for different shells
type Factory struct{}

var _ WrapperFactory = (*Factory)(nil)

// NewFactory creates a new Factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// CreateWrapper creates a WrapperGenerator for the specified shell
func (f *Factory) CreateWrapper(shell string) (WrapperGenerator, error) {
	switch SupportedShell(shell) {
	case ShellZsh, ShellBash:
		return &posixWrapper{shell: SupportedShell(shell)}, nil
	case ShellFish:
		return &fishWrapper{}, nil
	case ShellPowerShell:
		return &powerShellWrapper{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrShellNotSupported, shell, GetSupportedShells())
	}
}

// DetectShell attempts to detect the current shell from environment variables
func (f *Factory) DetectShell() (string, error) {
	return DetectCurrentShell()
}
