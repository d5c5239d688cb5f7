package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dandesousa/elevator-simulation/config"
	"github.com/dandesousa/elevator-simulation/definition"
	"github.com/dandesousa/elevator-simulation/dispatch"
)

type commandlineFlags struct {
	input      string
	verbose    bool
	configPath string
	envPath    string
	output     string
	udp        string
	pace       float64
	until      float64
	seed       int64
	dispatch   string

	set map[string]bool
}

/*
 * Parse command line arguments
 */
func parseCommandlineFlags() commandlineFlags {
	var flags commandlineFlags

	flag.StringVar(&flags.input, "i", "", "Simulation definition, JSON or YAML")
	flag.BoolVar(&flags.verbose, "v", false, "Verbose (debug) logging")
	flag.StringVar(&flags.configPath, "config", "", "Runtime config file (YAML)")
	flag.StringVar(&flags.envPath, "env", ".env", "File with ELEVSIM_* overrides")
	flag.StringVar(&flags.output, "o", "", "Trip CSV output, - for stdout")
	flag.StringVar(&flags.udp, "udp", "", "Publish trips as UDP datagrams to host:port")
	flag.Float64Var(&flags.pace, "pace", 0, "Simulated seconds per wall-clock second, 0 for unpaced")
	flag.Float64Var(&flags.until, "until", 0, "Stop after this many simulated seconds, 0 to run to completion")
	flag.Int64Var(&flags.seed, "seed", 1, "Seed for random call strategies")
	flag.StringVar(&flags.dispatch, "dispatch", "",
		"Dispatch strategy for banks without one: "+strings.Join(dispatch.Names(), ", "))

	flag.Parse()

	if flags.input == "" {
		fmt.Fprintln(os.Stderr, "Missing flags, use flag -h to see usage")
		os.Exit(1)
	}

	flags.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		flags.set[f.Name] = true
	})

	return flags
}

/*
 * Flags given on the command line win over the config file and .env
 */
func applyFlags(cfg *config.Config, flags commandlineFlags) error {
	if flags.set["o"] {
		cfg.Telemetry.CSV = flags.output
	}
	if flags.set["udp"] {
		cfg.Telemetry.UDP = flags.udp
	}
	if flags.set["pace"] {
		cfg.Pace = flags.pace
	}
	if flags.set["until"] {
		cfg.UntilSecs = flags.until
	}
	if flags.set["seed"] {
		cfg.Seed = flags.seed
	}
	if flags.set["dispatch"] {
		cfg.Dispatch = flags.dispatch
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg.Validate()
}

func loadConfig(flags commandlineFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	env, err := config.ReadEnv(flags.envPath)
	if err != nil {
		return cfg, err
	}

	if err := cfg.ApplyEnv(env); err != nil {
		return cfg, err
	}

	return cfg, applyFlags(&cfg, flags)
}

// Banks without a strategy of their own get the configured one.
func applyDefaultDispatch(def *definition.Definition, name string) {
	for i := range def.ElevatorBanks {
		if def.ElevatorBanks[i].DispatchStrategy == "" {
			def.ElevatorBanks[i].DispatchStrategy = name
		}
	}
}

func openCSV(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}
