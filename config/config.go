/*
 * Package config holds the runtime settings of a simulation run: delays,
 * dispatch, seed, pacing, telemetry outputs and log level.
 *
 * Settings come from a YAML file, then a .env file, then command-line flags,
 * each overriding the previous one.
 */
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/dandesousa/elevator-simulation/dispatch"
	"github.com/dandesousa/elevator-simulation/logger"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_PREFIX = "ELEVSIM_"

type TimingConfig struct {
	OpenSecs   float64 `yaml:"open_secs"`
	CloseSecs  float64 `yaml:"close_secs"`
	WaitSecs   float64 `yaml:"wait_secs"`
	TravelSecs float64 `yaml:"travel_secs"`
}

type TelemetryConfig struct {
	// CSV is a file path, "-" for stdout or "" for none.
	CSV string `yaml:"csv"`
	UDP string `yaml:"udp"`
}

type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Seed      int64           `yaml:"seed"`
	Dispatch  string          `yaml:"dispatch_strategy"`
	Pace      float64         `yaml:"pace"`
	UntilSecs float64         `yaml:"until_secs"`
	Timing    TimingConfig    `yaml:"timing"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

func Default() Config {
	timing := types.DefaultTiming()

	return Config{
		LogLevel: "info",
		Seed:     1,
		Dispatch: dispatch.NEAREST,
		Timing: TimingConfig{
			OpenSecs:   timing.Open.Seconds(),
			CloseSecs:  timing.Close.Seconds(),
			WaitSecs:   timing.Wait.Seconds(),
			TravelSecs: timing.Travel.Seconds(),
		},
		Telemetry: TelemetryConfig{CSV: "-"},
	}
}

/*
 * Load reads the YAML file at path over the defaults. An empty path
 * gives the defaults.
 */
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, types.NewConfigError("config", "opening "+path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, types.NewConfigError("config", "malformed "+path, err)
	}

	return cfg, cfg.Validate()
}

/*
 * ReadEnv reads ELEVSIM_* settings from the .env file at path and the
 * process environment, the latter taking precedence. A missing file is
 * not an error.
 */
func ReadEnv(path string) (map[string]string, error) {
	env := make(map[string]string)

	if path != "" {
		envFile, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, types.NewConfigError("env", "reading "+path, err)
		}
		for key, value := range envFile {
			env[key] = value
		}
	}

	for _, key := range envKeys {
		if value, ok := os.LookupEnv(ENV_PREFIX + key); ok {
			env[ENV_PREFIX+key] = value
		}
	}

	return env, nil
}

var envKeys = []string{
	"LOG_LEVEL",
	"SEED",
	"DISPATCH",
	"PACE",
	"UNTIL_SECS",
	"OPEN_SECS",
	"CLOSE_SECS",
	"WAIT_SECS",
	"TRAVEL_SECS",
	"CSV",
	"UDP",
}

func parseFloat(env map[string]string, key string, dst *float64) error {
	value, ok := env[ENV_PREFIX+key]
	if !ok {
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return types.NewConfigError(ENV_PREFIX+key, "not a number: "+value, err)
	}

	*dst = parsed
	return nil
}

func (cfg *Config) ApplyEnv(env map[string]string) error {
	if value, ok := env[ENV_PREFIX+"LOG_LEVEL"]; ok {
		cfg.LogLevel = value
	}
	if value, ok := env[ENV_PREFIX+"DISPATCH"]; ok {
		cfg.Dispatch = value
	}
	if value, ok := env[ENV_PREFIX+"CSV"]; ok {
		cfg.Telemetry.CSV = value
	}
	if value, ok := env[ENV_PREFIX+"UDP"]; ok {
		cfg.Telemetry.UDP = value
	}

	if value, ok := env[ENV_PREFIX+"SEED"]; ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return types.NewConfigError(ENV_PREFIX+"SEED", "not an integer: "+value, err)
		}
		cfg.Seed = seed
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"PACE", &cfg.Pace},
		{"UNTIL_SECS", &cfg.UntilSecs},
		{"OPEN_SECS", &cfg.Timing.OpenSecs},
		{"CLOSE_SECS", &cfg.Timing.CloseSecs},
		{"WAIT_SECS", &cfg.Timing.WaitSecs},
		{"TRAVEL_SECS", &cfg.Timing.TravelSecs},
	}

	for _, f := range floats {
		if err := parseFloat(env, f.key, f.dst); err != nil {
			return err
		}
	}

	return cfg.Validate()
}

func (cfg Config) Validate() error {
	delays := []struct {
		field string
		secs  float64
	}{
		{"timing.open_secs", cfg.Timing.OpenSecs},
		{"timing.close_secs", cfg.Timing.CloseSecs},
		{"timing.wait_secs", cfg.Timing.WaitSecs},
		{"timing.travel_secs", cfg.Timing.TravelSecs},
		{"pace", cfg.Pace},
		{"until_secs", cfg.UntilSecs},
	}

	for _, delay := range delays {
		if math.IsNaN(delay.secs) || delay.secs < 0 {
			return types.NewConfigError(delay.field, fmt.Sprintf("invalid value %v", delay.secs), nil)
		}
		if delay.secs > types.MAX_SECS {
			return types.NewConfigError(delay.field, fmt.Sprintf("value %v too large", delay.secs), nil)
		}
	}

	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return types.NewConfigError("log_level", "unknown level "+cfg.LogLevel, err)
	}

	if _, err := dispatch.ByName(cfg.Dispatch); err != nil {
		return types.NewConfigError("dispatch_strategy", "unknown strategy "+cfg.Dispatch, nil)
	}

	return nil
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (cfg Config) SimTiming() types.Timing {
	return types.Timing{
		Open:   secs(cfg.Timing.OpenSecs),
		Close:  secs(cfg.Timing.CloseSecs),
		Wait:   secs(cfg.Timing.WaitSecs),
		Travel: secs(cfg.Timing.TravelSecs),
	}
}

// Until is the virtual run limit, zero for running to completion.
func (cfg Config) Until() time.Duration {
	return secs(cfg.UntilSecs)
}
