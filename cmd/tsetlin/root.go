package main

import "github.com/spf13/cobra"

var (
	cfgFile     string
	pgo         bool
	stopProfile = func() {}
)

var rootCmd = &cobra.Command{
	Use:          "tsetlin",
	Short:        "Train Tsetlin machines on boolean datasets",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if pgo {
			stopProfile = startProfile("default.pgo")
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfiling()
	},
}

// stopProfiling writes the CPU profile, if one is being collected
func stopProfiling() {
	stopProfile()
	stopProfile = func() {}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&pgo, "pgo", false, "collect a CPU profile of the command into default.pgo")
	rootCmd.AddCommand(trainCmd, distillCmd, versionCmd)
}
