package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/store"
	"github.com/abhisek/worksheet/internal/work"
)

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Create and inspect saved works",
}

var workCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assemble variants into a new saved work",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		topic, _ := cmd.Flags().GetString("topic")
		locale, _ := cmd.Flags().GetString("locale")
		workType, _ := cmd.Flags().GetString("type")
		seed, _ := cmd.Flags().GetString("seed")
		count, _ := cmd.Flags().GetInt("count")
		shuffle, _ := cmd.Flags().GetBool("shuffle")
		layout, _ := cmd.Flags().GetString("layout")
		orientation, _ := cmd.Flags().GetString("orientation")

		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()

		pool, err := e.loadPool()
		if err != nil {
			return err
		}
		tpl, err := resolveTemplate(cmd, e)
		if err != nil {
			return err
		}
		if id, _ := cmd.Flags().GetString("template"); id != "" && tpl.ID == "" {
			tpl.ID = id
		}
		st, err := e.openStore()
		if err != nil {
			return err
		}

		selection := pool
		if topic != "" {
			selection = pool.ForTopics(topic)
		}
		w, err := work.New(selection, work.NewParams{
			Title:        title,
			TopicID:      topic,
			Locale:       locale,
			Type:         printprofile.ParseWorkType(workType),
			Template:     tpl,
			Seed:         seed,
			Count:        count,
			ShuffleOrder: shuffle,
			Layout:       printprofile.Layout(layout),
			Orientation:  printprofile.Orientation(orientation),
		})
		if err != nil {
			return explainBuildError(err)
		}
		if err := st.SaveWork(cmd.Context(), w); err != nil {
			return fmt.Errorf("save work: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created %s: %q with %d variants\n", w.ID, w.Title, len(w.Variants))
		fmt.Fprintf(out, "Print profile: %s, %s", w.Profile.Layout, w.Profile.Orientation)
		if w.Profile.ForceTwoUp {
			fmt.Fprint(out, " (forced; the fit check recommends single)")
		}
		fmt.Fprintln(out)
		return nil
	},
}

var workListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved works, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		st, err := e.openStore()
		if err != nil {
			return err
		}

		works, err := st.ListWorks(cmd.Context(), store.ListOpts{TopicID: topic, Limit: limit})
		if err != nil {
			return fmt.Errorf("list works: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(works) == 0 {
			fmt.Fprintln(out, "No works found.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-30s  %-10s  %-8s  %-8s  %s\n",
			"ID", "Title", "Topic", "Type", "Layout", "Variants")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, w := range works {
			title := w.Title
			if r := []rune(title); len(r) > 30 {
				title = string(r[:27]) + "..."
			}
			fmt.Fprintf(out, "%-36s  %-30s  %-10s  %-8s  %-8s  %d\n",
				w.ID, title, w.TopicID, w.Type, w.Layout, w.VariantCount)
		}
		return nil
	},
}

var workShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a work with its variants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		st, err := e.openStore()
		if err != nil {
			return err
		}
		w, err := st.GetWork(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(w)
		}

		fmt.Fprintf(out, "%s\n", w.Title)
		fmt.Fprintf(out, "  id:       %s\n", w.ID)
		fmt.Fprintf(out, "  topic:    %s\n", w.TopicID)
		fmt.Fprintf(out, "  type:     %s\n", w.Type)
		fmt.Fprintf(out, "  template: %s\n", w.TemplateID)
		fmt.Fprintf(out, "  profile:  %s, %s\n", w.Profile.Layout, w.Profile.Orientation)
		fmt.Fprintf(out, "  created:  %s\n\n", w.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		for _, v := range w.Variants {
			fmt.Fprintf(out, "  %d. %s  (%d tasks, seed %q, index %d)\n", v.No, v.Title, len(v.Tasks), v.Seed, v.Index)
			fmt.Fprintf(out, "     %s\n", strings.Join(v.TaskIDs(), " "))
		}
		return nil
	},
}

var workDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a work and its variants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		st, err := e.openStore()
		if err != nil {
			return err
		}
		if err := st.DeleteWork(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	addTemplateFlags(workCreateCmd)
	workCreateCmd.Flags().String("title", "", "Work title (default: template title)")
	workCreateCmd.Flags().String("topic", "", "Topic ID; also restricts the task pool")
	workCreateCmd.Flags().String("locale", "en", "Locale of the printed document")
	workCreateCmd.Flags().String("type", "lesson", "Work type: lesson, quiz, test or homework")
	workCreateCmd.Flags().String("seed", "", "Seed for task selection (default: random)")
	workCreateCmd.Flags().Int("count", 1, "Number of variants")
	workCreateCmd.Flags().Bool("shuffle", false, "Shuffle task order across sections")
	workCreateCmd.Flags().String("layout", "", "Layout override: single, two, two_cut or two_dup")
	workCreateCmd.Flags().String("orientation", "", "Orientation override: portrait or landscape")

	workListCmd.Flags().String("topic", "", "Filter by topic ID")
	workListCmd.Flags().Int("limit", 20, "Maximum number of works")

	workShowCmd.Flags().Bool("json", false, "Print the work as JSON")

	workCmd.AddCommand(workCreateCmd)
	workCmd.AddCommand(workListCmd)
	workCmd.AddCommand(workShowCmd)
	workCmd.AddCommand(workDeleteCmd)
}
