// Package config loads the training configuration from YAML.
// Keys missing from the file keep their defaults.
package config

import "errors"
import "fmt"
import "io/fs"
import "os"

import "gopkg.in/yaml.v3"

import "github.com/neurlang/tsetlin/machine"
import "github.com/neurlang/tsetlin/trainer"

// ErrInvalid wraps every validation failure that is not a machine configuration error
var ErrInvalid = errors.New("invalid configuration")

// Config holds the machine, trainer and ledger settings.
type Config struct {
	Clauses     int     `yaml:"clauses"`
	Specificity float64 `yaml:"specificity"`
	Threshold   float64 `yaml:"threshold"`
	States      int     `yaml:"states"`
	Seed        uint64  `yaml:"seed"`
	Threads     int     `yaml:"threads"`

	Epochs         int `yaml:"epochs"`
	EpochsPerRound int `yaml:"epochs_per_round"`
	TargetAccuracy int `yaml:"target_accuracy"`
	Significance   int `yaml:"significance"`

	// LogFile receives training progress instead of stderr
	LogFile string `yaml:"log_file"`

	RunLog RunLogConfig `yaml:"run_log"`

	// NTPServer timestamps runs, empty uses the local clock
	NTPServer string `yaml:"ntp_server"`
}

// RunLogConfig selects the run ledger. An empty DSN disables it.
type RunLogConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Default gets the default configuration
func Default() Config {
	return Config{
		Clauses:        20,
		Specificity:    machine.DefaultSpecificity,
		Threshold:      machine.DefaultThreshold,
		States:         machine.DefaultStates,
		Epochs:         trainer.DefaultEpochs,
		EpochsPerRound: trainer.DefaultEpochsPerRound,
		TargetAccuracy: trainer.DefaultTargetAccuracy,
		Significance:   trainer.DefaultSignificance,
		RunLog:         RunLogConfig{Driver: "sqlite"},
	}
}

// Load reads path over the defaults. A missing file or empty path gives the defaults.
func Load(path string) (Config, error) {
	var cfg = Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Machine gets the machine hyper parameters for features features
func (c Config) Machine(features int) machine.HyperParameters {
	return machine.HyperParameters{
		Features:    features,
		Clauses:     c.Clauses,
		Specificity: c.Specificity,
		Threshold:   c.Threshold,
		States:      c.States,
		Seed:        c.Seed,
		Threads:     c.Threads,
	}
}

// Trainer gets the trainer hyper parameters
func (c Config) Trainer() trainer.HyperParameters {
	return trainer.HyperParameters{
		Epochs:         c.Epochs,
		EpochsPerRound: c.EpochsPerRound,
		TargetAccuracy: c.TargetAccuracy,
		Significance:   byte(c.Significance),
	}
}

// Validate checks the configuration, machine errors wrap machine.ErrConfig
func (c Config) Validate() error {
	if err := c.Machine(1).Validate(); err != nil {
		return err
	}
	switch {
	case c.Threads < 0:
		return fmt.Errorf("%w: threads %d", ErrInvalid, c.Threads)
	case c.Epochs < 0:
		return fmt.Errorf("%w: epochs %d", ErrInvalid, c.Epochs)
	case c.EpochsPerRound < 0:
		return fmt.Errorf("%w: epochs_per_round %d", ErrInvalid, c.EpochsPerRound)
	case c.Significance < 0 || c.Significance > 100:
		return fmt.Errorf("%w: significance %d", ErrInvalid, c.Significance)
	case c.RunLog.Driver != "sqlite" && c.RunLog.Driver != "mysql":
		return fmt.Errorf("%w: run_log driver %q", ErrInvalid, c.RunLog.Driver)
	}
	return nil
}
