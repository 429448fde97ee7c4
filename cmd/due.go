package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/internal/practice"
	"github.com/example/ellinika/pkg/models"
	"github.com/spf13/cobra"
)

var (
	dueSkill string
	dueLimit int
)

var dueCmd = &cobra.Command{
	Use:   "due <user-code>",
	Short: "Show vocabulary due for review for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer db.Close()

		user, err := database.NewUserRepository(db).GetByCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		svc := practice.NewService(db, practice.Options{Logger: log})
		items, err := svc.GetItemsDueForReview(cmd.Context(), user.ID, models.SkillType(dueSkill), dueLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "Nothing due. Καλή δουλειά!")
			return nil
		}

		fmt.Fprintf(out, "%d items due for %s:\n\n", len(items), dueSkill)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tGreek\tEnglish\tCategory")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Greek, item.English, item.Category)
		}
		return w.Flush()
	},
}

func init() {
	dueCmd.Flags().StringVar(&dueSkill, "skill", string(models.SkillRecognition), "skill type: recognition or production")
	dueCmd.Flags().IntVar(&dueLimit, "limit", practice.DefaultLimit, "maximum number of items")
	rootCmd.AddCommand(dueCmd)
}
