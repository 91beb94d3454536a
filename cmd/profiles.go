package cmd

import (
	"fmt"
	"strings"

	"ars/internal/aws"
	"ars/internal/complete"
	"ars/internal/config"
	"ars/internal/tui"
	"ars/internal/util"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the profiles of the credentials file",
	Long:  `Lists every profile with its emphasis class and the names of the variables it exports. Values are never printed.`,
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	settings, err := config.Current()
	if err != nil {
		return err
	}

	cfg, err := aws.LoadProfiles(settings.CredentialsPath)
	if err != nil {
		return err
	}
	if !cfg.Found {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle.Render("⚠ No credentials file found at "+cfg.Path))
		return nil
	}
	if cfg.Len() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle.Render("⚠ No profiles found in "+cfg.Path))
		return nil
	}

	policy := settings.Engine.Policy
	if policy == nil {
		policy = complete.DefaultPolicy
	}

	rows := make([][]string, 0, cfg.Len())
	for _, p := range cfg.Profiles() {
		class := policy.Classify(p.Name)
		classCell := class.String()
		if class == complete.Warning {
			classCell = util.ErrorColor.Sprint(classCell)
		}

		kind := "static"
		if p.HasSessionToken() {
			kind = "session"
		}

		var names []string
		for _, v := range p.Exports() {
			names = append(names, v.Name)
		}
		vars := strings.Join(names, ", ")
		if vars == "" {
			vars = util.MutedColor.Sprint("-")
		}

		rows = append(rows, []string{p.Name, classCell, kind, vars})
	}

	util.PrintTable(cmd.OutOrStdout(), []string{"Profile", "Class", "Type", "Variables"}, rows)
	util.InfoColor.Fprintf(cmd.ErrOrStderr(), "%d profiles in %s\n", cfg.Len(), util.BoldColor.Sprint(cfg.Path))
	return nil
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
