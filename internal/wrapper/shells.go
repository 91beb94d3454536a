package wrapper

import (
	"fmt"
	"strings"
)

// posixWrapper serves bash and zsh, which share the function syntax.
type posixWrapper struct {
	shell SupportedShell
}

func (w *posixWrapper) Shell() SupportedShell { return w.shell }

func (w *posixWrapper) GenerateFunction() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s() {\n", Command)
	fmt.Fprintf(&b, "  case \"$1\" in\n")
	fmt.Fprintf(&b, "    %s)\n", strings.Join(Passthrough, "|"))
	fmt.Fprintf(&b, "      command %s \"$@\"\n", Command)
	fmt.Fprintf(&b, "      return\n")
	fmt.Fprintf(&b, "      ;;\n")
	fmt.Fprintf(&b, "  esac\n")
	fmt.Fprintf(&b, "  local __ars_exports\n")
	fmt.Fprintf(&b, "  __ars_exports=\"$(command %s \"$@\")\" || return $?\n", Command)
	fmt.Fprintf(&b, "  eval \"$__ars_exports\"\n")
	fmt.Fprintf(&b, "}\n")
	return b.String()
}

func (w *posixWrapper) SetupLine() string {
	return fmt.Sprintf("eval \"$(command %s init %s)\"", Command, w.shell)
}

type fishWrapper struct{}

func (w *fishWrapper) Shell() SupportedShell { return ShellFish }

func (w *fishWrapper) GenerateFunction() string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s\n", Command)
	fmt.Fprintf(&b, "    switch \"$argv[1]\"\n")
	fmt.Fprintf(&b, "        case %s\n", strings.Join(Passthrough, " "))
	fmt.Fprintf(&b, "            command %s $argv\n", Command)
	fmt.Fprintf(&b, "            return\n")
	fmt.Fprintf(&b, "    end\n")
	fmt.Fprintf(&b, "    set -l __ars_exports (command %s $argv)\n", Command)
	fmt.Fprintf(&b, "    or return $status\n")
	fmt.Fprintf(&b, "    string join \\n $__ars_exports | source\n")
	fmt.Fprintf(&b, "end\n")
	return b.String()
}

func (w *fishWrapper) SetupLine() string {
	return fmt.Sprintf("command %s init fish | source", Command)
}

// powerShellWrapper translates the export lines into Env: assignments.
type powerShellWrapper struct{}

func (w *powerShellWrapper) Shell() SupportedShell { return ShellPowerShell }

func (w *powerShellWrapper) GenerateFunction() string {
	quoted := make([]string, len(Passthrough))
	for i, arg := range Passthrough {
		quoted[i] = "'" + arg + "'"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "function %s {\n", Command)
	fmt.Fprintf(&b, "    $exe = Get-Command %s -CommandType Application | Select-Object -First 1\n", Command)
	fmt.Fprintf(&b, "    if ($args.Count -gt 0 -and @(%s) -contains $args[0]) {\n", strings.Join(quoted, ", "))
	fmt.Fprintf(&b, "        & $exe @args\n")
	fmt.Fprintf(&b, "        return\n")
	fmt.Fprintf(&b, "    }\n")
	fmt.Fprintf(&b, "    $exports = & $exe @args\n")
	fmt.Fprintf(&b, "    if ($LASTEXITCODE -ne 0) { return }\n")
	fmt.Fprintf(&b, "    foreach ($line in $exports) {\n")
	fmt.Fprintf(&b, "        if ($line -match '^export ([A-Za-z_][A-Za-z0-9_]*)=(.*)$') {\n")
	fmt.Fprintf(&b, "            Set-Item -Path \"Env:$($Matches[1])\" -Value $Matches[2]\n")
	fmt.Fprintf(&b, "        }\n")
	fmt.Fprintf(&b, "    }\n")
	fmt.Fprintf(&b, "}\n")
	return b.String()
}

func (w *powerShellWrapper) SetupLine() string {
	return fmt.Sprintf("Invoke-Expression (& %s init powershell | Out-String)", Command)
}
