package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheet/internal/render"
	"github.com/abhisek/worksheet/internal/ui/components"
)

var planCmd = &cobra.Command{
	Use:   "plan <work-id>",
	Short: "Paginate a work and preview its sheets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		width, _ := cmd.Flags().GetInt("width")

		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		doc, err := loadDocument(cmd, e, args[0])
		if err != nil {
			return err
		}
		runner, err := e.printRunner(cmd.Context(), render.NewEmptyRegistry(""), false)
		if err != nil {
			return err
		}
		plan, err := runner.Plan(cmd.Context(), doc)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		}
		fmt.Fprintln(out, components.NewPlanView(plan, width).View())
		return nil
	},
}

func init() {
	addPrintFlags(planCmd)
	planCmd.Flags().Bool("json", false, "Print the sheet plan as JSON")
	planCmd.Flags().Int("width", 100, "Preview width in columns")
}
