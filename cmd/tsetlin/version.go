package main

import "fmt"
import "runtime"
import "runtime/debug"

import "github.com/spf13/cobra"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		var version = "(devel)"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			version = info.Main.Version
		}
		fmt.Fprintf(cmd.OutOrStdout(), "tsetlin %s %s %s/%s\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
