package cmd

import (
	"github.com/TwirlySeal/duit/pkg/dates"
	"github.com/TwirlySeal/duit/pkg/task"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(parseCmd, tokensCmd)
	setParseCmdFlags()
}

var parseCmd = &cobra.Command{
	Use:   "parse [<title>...]",
	Short: "find date and time expressions in a title",
	Long: `parse [<title>...] [--highlight]
  args are joined into a single title; without args one title is read per line of stdin.
  prints every expression with its offsets, or the highlighted titles with --highlight`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := titlesFromArgs(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		editor, err := newEditor()
		if err != nil {
			return err
		}
		var titles []*task.Title
		for _, line := range lines {
			title, err := editor.Parse(line)
			if err != nil {
				return err
			}
			titles = append(titles, title)
		}

		highlight, err := cmd.Flags().GetBool("highlight")
		if err != nil {
			return err
		}
		if highlight {
			style, err := task.StyleByFlags(viper.GetBool("color"), viper.GetBool("conky"))
			if err != nil {
				return err
			}
			return task.PrintTitles(cmd.OutOrStdout(), titles, style, palette())
		}

		reports := make([]*task.Report, 0, len(titles))
		for _, title := range titles {
			reports = append(reports, editor.Report(title))
		}
		return task.Encode(cmd.OutOrStdout(), viper.GetString("output"), reports)
	},
}

func setParseCmdFlags() {
	parseCmd.Flags().Bool("highlight", false, "print titles with their expressions marked")
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [<title>...]",
	Short: "print the token stream of a title",
	Long: `tokens [<title>...]
  prints what the scanner makes of a title, before any merging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := titlesFromArgs(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		out := make([][]dates.Token, 0, len(lines))
		for _, line := range lines {
			out = append(out, dates.Tokens(line))
		}
		return task.Encode(cmd.OutOrStdout(), viper.GetString("output"), out)
	},
}
