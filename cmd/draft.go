package cmd

import (
	"fmt"

	"github.com/TwirlySeal/duit/pkg/task"
	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	draftCmd.Flags().Bool("sort", false, "order drafts by due date, undated last")
	rootCmd.AddCommand(draftCmd, formatCmd)
}

var draftCmd = &cobra.Command{
	Use:   "draft [<title>...]",
	Short: "build the task payload for a title",
	Long: `draft [<title>...]
  takes the last date/time expression out of the title and prints
  the remaining title with the extracted date and time`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := titlesFromArgs(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		editor, err := newEditor()
		if err != nil {
			return err
		}
		drafts := make([]*task.Draft, 0, len(lines))
		for _, line := range lines {
			draft, err := editor.Draft(line)
			if err != nil {
				return err
			}
			drafts = append(drafts, draft)
		}
		if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
			drafts = task.SortDrafts(drafts)
		}
		return task.Encode(cmd.OutOrStdout(), viper.GetString("output"), drafts)
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <wire>...",
	Short: "format stored dates for display",
	Long: `format <wire>...
  each arg is a stored "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" value;
  prints Today, Tomorrow, a weekday within the week, or the full date`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return terrors.ErrNoArgsProvided
		}
		editor, err := newEditor()
		if err != nil {
			return err
		}
		for _, arg := range args {
			human, err := editor.Describe(arg)
			if err != nil {
				return terrors.ErrorArgParse(arg, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), human)
		}
		return nil
	},
}
