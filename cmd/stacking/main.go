package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stacking",
		Short: "stacking is a tool to bag and stack decision trees",
		Long:  `A tool to train bagged decision trees over a dataset, stack a meta-tree on their predictions and measure how well the whole predicts held-out rows`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), runCmd(config), splitCmd(config), treeCmd(config), predictCmd(config))
	return rootCmd
}

// Logf writes a line to STDERR when the verbose flag is set
func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	if !rcc.verbose {
		return
	}
	fmt.Fprintln(os.Stderr, fmt.Sprintf(format, a...))
}
