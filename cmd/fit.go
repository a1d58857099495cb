package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheet/internal/printdoc"
	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/work"
)

var fitCmd = &cobra.Command{
	Use:   "fit <work-id>",
	Short: "Check whether a work's variants fit two to a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		w, pool, err := loadWork(cmd, e, args[0])
		if err != nil {
			return err
		}
		verdict, err := w.Fit(pool)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Recommended layout: %s\n", verdict.RecommendedLayout)
		fmt.Fprintf(out, "Two-up allowed:     %t\n", verdict.AllowTwoUp)
		fmt.Fprintf(out, "Math-heavy:         %t\n\n", verdict.Metrics.MathHeavy)

		fmt.Fprintf(out, "%-36s  %5s  %7s  %8s  %5s\n", "Variant", "Tasks", "Chars", "Longest", "Long")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, m := range verdict.Metrics.Variants {
			fmt.Fprintf(out, "%-36s  %5d  %7d  %8d  %5d\n",
				m.VariantID, m.TaskCount, m.TotalTextChars, m.MaxTaskChars, m.LongTaskCount)
		}
		if len(verdict.Reasons) > 0 {
			fmt.Fprintln(out)
			for _, r := range verdict.Reasons {
				fmt.Fprintf(out, "  • %s\n", r)
			}
		}
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <task-count>...",
	Short: "Recommend a print layout for variants with the given task counts",
	Example: `  worksheet recommend 6 8 12
  worksheet recommend --type test 6 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workType, _ := cmd.Flags().GetString("type")

		counts := make([]int, 0, len(args))
		for _, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid task count %q", a)
			}
			counts = append(counts, n)
		}

		rec := printprofile.Recommend(printprofile.RecommendInput{
			WorkType:          printprofile.ParseWorkType(workType),
			VariantTaskCounts: counts,
		})
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Layout:      %s\n", rec.RecommendedLayout)
		fmt.Fprintf(out, "Two-up ok:   %t\n", rec.CanUseTwoUp)
		codes := make([]string, len(rec.ReasonCodes))
		for i, c := range rec.ReasonCodes {
			codes[i] = string(c)
		}
		fmt.Fprintf(out, "Reasons:     %s\n", strings.Join(codes, ", "))
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("type", "lesson", "Work type: lesson, quiz, test or homework")
}

// loadWork reads a saved work and the task pool its documents resolve
// against.
func loadWork(cmd *cobra.Command, e *env, id string) (*work.Work, *taskbank.Pool, error) {
	st, err := e.openStore()
	if err != nil {
		return nil, nil, err
	}
	w, err := st.GetWork(cmd.Context(), id)
	if err != nil {
		return nil, nil, err
	}
	pool, err := e.loadPool()
	if err != nil {
		return nil, nil, err
	}
	return w, pool, nil
}

// loadDocument builds the printable document of a saved work with the
// --layout and --orientation overrides applied.
func loadDocument(cmd *cobra.Command, e *env, id string) (printdoc.Document, error) {
	w, pool, err := loadWork(cmd, e, id)
	if err != nil {
		return printdoc.Document{}, err
	}
	layout, _ := cmd.Flags().GetString("layout")
	orientation, _ := cmd.Flags().GetString("orientation")
	return w.Document(pool, work.Overrides{Layout: layout, Orientation: orientation})
}

func addPrintFlags(c *cobra.Command) {
	c.Flags().String("layout", "", "Layout override: single, two, two_cut or two_dup")
	c.Flags().String("orientation", "", "Orientation override: portrait or landscape")
}
