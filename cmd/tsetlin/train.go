package main

import "fmt"

import "github.com/spf13/cobra"

import "github.com/neurlang/tsetlin/config"
import "github.com/neurlang/tsetlin/datasets"
import "github.com/neurlang/tsetlin/datasets/isprime"
import "github.com/neurlang/tsetlin/machine"
import "github.com/neurlang/tsetlin/runlog"
import "github.com/neurlang/tsetlin/trainer"

var (
	dataset    string
	bits       int
	epochs     int
	seed       uint64
	clauses    int
	printRules bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a machine and print its accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, features, labels, err := train(cmd)
		if err != nil {
			return err
		}
		acc, err := m.Evaluate(features, labels)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "accuracy %.4f on %d rows, seed %d\n", acc, features.Rows(), m.Seed())
		if printRules {
			for i, r := range m.Rules() {
				var sign = "-"
				if r.Polarity {
					sign = "+"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%3d %s %s\n", i, sign, r.Text)
			}
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{trainCmd, distillCmd} {
		c.Flags().StringVar(&dataset, "dataset", "xor", "dataset to train on: xor or isprime")
		c.Flags().IntVar(&bits, "bits", 8, "number of bits of the isprime dataset")
		c.Flags().IntVar(&epochs, "epochs", trainer.DefaultEpochs, "total number of epochs")
		c.Flags().Uint64Var(&seed, "seed", 0, "seed of the machine, 0 for a random one")
		c.Flags().IntVar(&clauses, "clauses", 20, "number of clauses")
	}
	trainCmd.Flags().BoolVar(&printRules, "rules", false, "print the learned clauses")
}

func load(name string) (*datasets.Matrix, datasets.Labels, error) {
	switch name {
	case "xor":
		features, labels := datasets.XOR()
		return features, labels, nil
	case "isprime":
		if bits < 1 || bits > 24 {
			return nil, nil, fmt.Errorf("isprime: %d bits out of range 1..24", bits)
		}
		features, labels := isprime.Dataslice{Bits: bits}.Table()
		return features, labels, nil
	}
	return nil, nil, fmt.Errorf("unknown dataset %q", name)
}

// configure reads the config file and applies the flags set on cmd
func configure(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("epochs") {
		cfg.Epochs = epochs
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("clauses") {
		cfg.Clauses = clauses
	}
	return cfg, cfg.Validate()
}

// train builds a machine from the configuration and trains it on the selected dataset,
// recording the run when a run log is configured
func train(cmd *cobra.Command) (*machine.Machine, *datasets.Matrix, datasets.Labels, error) {
	cfg, err := configure(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	features, labels, err := load(dataset)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := machine.New(cfg.Machine(features.Cols()))
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.LogFile != "" {
		if err := trainer.SetLogFile(cfg.LogFile); err != nil {
			return nil, nil, nil, err
		}
		defer trainer.SetLogger(nil)
	}

	var rec trainer.Recorder
	var store *runlog.Store
	var run runlog.Run
	if cfg.RunLog.DSN != "" {
		store, err = runlog.Open(cfg.RunLog.Driver, cfg.RunLog.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		defer store.Close()
		h := m.HyperParameters()
		run, err = store.CreateRun(runlog.Run{
			Dataset:     dataset,
			Features:    h.Features,
			Clauses:     h.Clauses,
			States:      h.States,
			Specificity: h.Specificity,
			Threshold:   h.Threshold,
			Seed:        m.Seed(),
			Started:     now(cfg.NTPServer),
		})
		if err != nil {
			return nil, nil, nil, err
		}
		rec = store.Recorder(run.ID)
		fmt.Fprintln(cmd.OutOrStdout(), "run", run.ID)
	}

	res, err := trainer.Train(m, features, labels, cfg.Trainer(), rec)
	if err != nil {
		return nil, nil, nil, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "stopped (%s) after %d epochs in %d rounds, success %d %%\n", res.Stopped, res.Epochs, res.Rounds, res.Success)
	if store != nil {
		if err := store.FinishRun(run.ID, now(cfg.NTPServer), res); err != nil {
			return nil, nil, nil, err
		}
	}
	return m, features, labels, nil
}
