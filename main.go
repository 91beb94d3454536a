/*
ARS - AWS Role Switcher
Copyright (c) 2024 Alessandro Gallo. All rights reserved.

Licensed under the Business Source License 1.1.
See LICENSE file for full terms.
*/

package main

import (
	"fmt"
	"os"

	"ars/cmd"
	"ars/internal/config"
	"ars/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := config.InitConfig(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("✗ Error: "+err.Error()))
		os.Exit(1)
	}
	cmd.SetVersionInfo(version, commit, date)
	os.Exit(cmd.Execute())
}
