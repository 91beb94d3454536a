package cmd

import (
	"os"

	"ars/internal/aws"
	"ars/internal/session"
	"ars/internal/util"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions offered by the region prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := os.Getenv(session.RegionVar)

		rows := make([][]string, 0, len(aws.Regions))
		for _, r := range aws.Regions {
			mark := ""
			if r.Code == current {
				mark = util.SuccessColor.Sprint("*")
			}
			rows = append(rows, []string{r.Code, r.Name, mark})
		}

		util.PrintTable(cmd.OutOrStdout(), []string{"Region", "Name", "Current"}, rows)
		if current != "" && !aws.IsKnownRegion(current) {
			util.WarnColor.Fprintf(cmd.ErrOrStderr(), "⚠ %s=%s is not in the list above\n", session.RegionVar, current)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
