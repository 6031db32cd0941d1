package main

import "fmt"

import "github.com/spf13/cobra"

import "github.com/neurlang/tsetlin/distill"

var distillCmd = &cobra.Command{
	Use:   "distill",
	Short: "Train a machine and compile its truth table into a quaternary filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, _, err := train(cmd)
		if err != nil {
			return err
		}
		f, err := distill.Make(m, m.Features())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "filter of %d bytes over %d inputs, %d positive\n", f.Len(), 1<<f.Width, f.Positives)
		return nil
	},
}
