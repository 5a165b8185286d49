package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/TwirlySeal/duit/config"
	"github.com/TwirlySeal/duit/pkg/dates"
	"github.com/TwirlySeal/duit/pkg/logging"
	"github.com/TwirlySeal/duit/pkg/task"
	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "duit",
	Short:        fmt.Sprintf("duit %s: finds dates and times in task titles", version),
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() {
		arg, err := rootCmd.PersistentFlags().GetString("config")
		cobra.CheckErr(err)
		cobra.CheckErr(config.InitViper(arg))
		consoleLevel := viper.GetInt("logging.console-level")
		if viper.GetBool("debug") {
			consoleLevel = int(zapcore.DebugLevel)
		}
		cobra.CheckErr(logging.Initialize(config.ConfigPath(), consoleLevel, viper.GetInt("logging.file-level")))
	})
	rootCmd.PersistentFlags().StringP("config", "c", "", "config directory")
	rootCmd.PersistentFlags().Bool("color", false, "enable colored mode")
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	rootCmd.PersistentFlags().Bool("conky", false, "enable conky mode")
	viper.BindPFlag("conky", rootCmd.PersistentFlags().Lookup("conky"))
	rootCmd.PersistentFlags().Bool("debug", false, "enable debugging mode")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	rootCmd.PersistentFlags().StringP("output", "o", "yaml", "output format: yaml or json")
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	rootCmd.PersistentFlags().String("flush", "observed", "merge flush policy: observed or strict")
	viper.BindPFlag("parser.flush", rootCmd.PersistentFlags().Lookup("flush"))
}

func Execute() error {
	defer logging.Close()
	return rootCmd.Execute()
}

func newEditor() (*task.Editor, error) {
	policy, err := dates.PolicyByName(viper.GetString("parser.flush"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", terrors.ErrFlag, err)
	}
	return task.NewEditor(dates.SystemClock, policy), nil
}

func palette() task.Palette {
	return task.Palette{
		Default: viper.GetString("print.color-default"),
		Date:    viper.GetString("print.color-date"),
		Time:    viper.GetString("print.color-time"),
	}
}

// titlesFromArgs joins the args into one title, or reads one title per
// non-blank line of in when there are no args.
func titlesFromArgs(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, terrors.ErrNoArgsProvided
	}
	return lines, nil
}
