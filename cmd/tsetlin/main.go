package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		stopProfiling()
		os.Exit(1)
	}
}
