package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Assemble worksheet variants and paginate them for print",
	Long: `worksheet builds deterministic worksheet variants from templates and a task
pool, decides how they fit on paper and renders print-ready PDFs.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a worksheet.yaml config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORKSHEET_DB)")
	rootCmd.PersistentFlags().String("pool", "", "Task pool file, YAML or JSON (overrides WORKSHEET_POOL)")
	rootCmd.PersistentFlags().String("templates", "", "Directory of variant templates (overrides WORKSHEET_TEMPLATES_DIR)")
	rootCmd.PersistentFlags().String("log-mode", "", "Log mode: dev, prod or quiet")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(workCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
