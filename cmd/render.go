package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheet/internal/export"
	"github.com/abhisek/worksheet/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <work-id>",
	Short: "Render a work to PDF",
	Long: `Render a work to PDF with the headless browser or the LaTeX backend.

Two-up layouts default to LaTeX and single to the browser; --engine or
WORKSHEET_RENDER_ENGINE overrides the choice. When no backend is available
the printable plan is still shown by "worksheet plan".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _ := cmd.Flags().GetString("engine")
		outPath, _ := cmd.Flags().GetString("out")
		if engine != "" {
			if _, ok := render.ParseEngine(engine); !ok {
				return fmt.Errorf("unknown engine %q (browser or latex)", engine)
			}
		}

		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		doc, err := loadDocument(cmd, e, args[0])
		if err != nil {
			return err
		}
		registry := render.NewRegistry(e.renderConfig(), e.log)
		runner, err := e.printRunner(cmd.Context(), registry, true)
		if err != nil {
			return err
		}

		res, err := runner.Run(cmd.Context(), doc, engine)
		if errors.Is(err, render.ErrRenderUnavailable) {
			return fmt.Errorf("%w\nexport is unavailable; preview the printable plan with: worksheet plan %s", err, args[0])
		}
		if err != nil {
			return err
		}

		if outPath == "" {
			outPath = export.FileName(doc.WorkID, string(res.Plan.Layout))
		}
		if err := os.WriteFile(outPath, res.PDF, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Wrote %s (%s, %d pages, %d sheets)\n", outPath, res.Engine, res.Pages, res.Plan.SheetCount())
		if res.Location != "" {
			fmt.Fprintf(out, "Exported to %s\n", res.Location)
		}
		return nil
	},
}

func init() {
	addPrintFlags(renderCmd)
	renderCmd.Flags().String("engine", "", "Render engine override: browser or latex")
	renderCmd.Flags().StringP("out", "o", "", "Output file (default: <work-id>-<layout>.pdf)")
}
