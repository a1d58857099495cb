package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/variantplan"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble variants from a template without saving them",
	Long: `Assemble variants from a template and the task pool.

The same template, pool, seed and count always produce the same variants,
so a lost variant can be regenerated from its seed and index.`,
	RunE: runBuild,
}

func init() {
	addTemplateFlags(buildCmd)
	buildCmd.Flags().String("seed", "", "Seed for task selection (required)")
	buildCmd.Flags().Int("count", 1, "Number of variants")
	buildCmd.Flags().Bool("shuffle", false, "Shuffle task order across sections")
	buildCmd.Flags().String("topic", "", "Only draw tasks from this topic")
	buildCmd.Flags().Bool("json", false, "Print variants as JSON")
	_ = buildCmd.MarkFlagRequired("seed")
}

func addTemplateFlags(c *cobra.Command) {
	c.Flags().String("template", "", "Template ID from the templates directory")
	c.Flags().String("template-file", "", "Template file, YAML or JSON")
	c.MarkFlagsMutuallyExclusive("template", "template-file")
	c.MarkFlagsOneRequired("template", "template-file")
}

// resolveTemplate loads the template named by --template or --template-file.
func resolveTemplate(cmd *cobra.Command, e *env) (variantplan.Template, error) {
	if path, _ := cmd.Flags().GetString("template-file"); path != "" {
		return variantplan.LoadTemplate(path)
	}
	id, _ := cmd.Flags().GetString("template")
	catalog, err := e.loadTemplates()
	if err != nil {
		return variantplan.Template{}, err
	}
	tpl, ok := catalog.Get(id)
	if !ok {
		return variantplan.Template{}, fmt.Errorf("template %q not found in %s (known: %s)",
			id, e.cfg.TemplatesDir, strings.Join(catalog.IDs(), ", "))
	}
	return tpl, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetString("seed")
	count, _ := cmd.Flags().GetInt("count")
	shuffle, _ := cmd.Flags().GetBool("shuffle")
	topic, _ := cmd.Flags().GetString("topic")
	asJSON, _ := cmd.Flags().GetBool("json")

	e, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	pool, err := e.loadPool()
	if err != nil {
		return err
	}
	if topic != "" {
		pool = pool.ForTopics(topic)
	}
	tpl, err := resolveTemplate(cmd, e)
	if err != nil {
		return err
	}

	variants, err := variantplan.NewBuilder(pool).BuildVariants(tpl, seed, count, variantplan.Options{ShuffleOrder: shuffle})
	if err != nil {
		return explainBuildError(err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(variants)
	}
	printVariants(out, variants, pool)
	return nil
}

// explainBuildError turns an insufficient-tasks failure into an
// actionable message.
func explainBuildError(err error) error {
	var insufficient *variantplan.InsufficientTasksError
	if errors.As(err, &insufficient) {
		return fmt.Errorf("%w\nadd tasks for skills %s with difficulty %s, or lower the section count",
			err, strings.Join(insufficient.SkillIDs, ", "), insufficient.DifficultyRange)
	}
	return err
}

func printVariants(out io.Writer, variants []variantplan.Variant, pool *taskbank.Pool) {
	for _, v := range variants {
		fmt.Fprintf(out, "%s  (seed %q, index %d)\n", v.Title, v.Seed, v.Index)
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, t := range v.Tasks {
			statement := ""
			if task, err := pool.Get(t.TaskID); err == nil {
				statement = task.StatementMD
			}
			if r := []rune(statement); len(r) > 44 {
				statement = string(r[:41]) + "..."
			}
			fmt.Fprintf(out, "%3d. %-10s  %-8s  %s\n", t.OrderIndex+1, t.TaskID, t.SectionLabel, statement)
		}
		fmt.Fprintln(out)
	}
}
