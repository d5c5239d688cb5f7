package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/dandesousa/elevator-simulation/definition"
	"github.com/dandesousa/elevator-simulation/ident"
	"github.com/dandesousa/elevator-simulation/logger"
	"github.com/dandesousa/elevator-simulation/network"
	"github.com/dandesousa/elevator-simulation/sim"
	"github.com/dandesousa/elevator-simulation/telemetry"
	"github.com/dandesousa/elevator-simulation/timer"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(parseCommandlineFlags()))
}

/*
 * run returns the exit code, so deferred closes happen before the exit
 */
func run(flags commandlineFlags) int {

	/*
	 * Runtime config: YAML file, then .env, then flags
	 */
	cfg, err := loadConfig(flags)
	level, levelErr := logger.ParseLevel(cfg.LogLevel)
	if levelErr != nil {
		level = zerolog.InfoLevel
	}
	log := logger.GetLoggerConfigured(level)

	if err != nil {
		log.Error().Err(err).Msg("Loading config")
		return 1
	}

	/*
	 * Simulation definition
	 */
	def, err := definition.Read(flags.input)
	if err != nil {
		log.Error().Err(err).Str("input", flags.input).Msg("Reading simulation")
		return 1
	}
	applyDefaultDispatch(def, cfg.Dispatch)

	/*
	 * Telemetry sinks
	 */
	runID := ident.NewRunID()
	collector := &telemetry.Collector{}
	sinks := telemetry.Multi{collector, telemetry.NewLogSink(*log, zerolog.DebugLevel)}

	if cfg.Telemetry.CSV != "" {
		out, closeCSV, err := openCSV(cfg.Telemetry.CSV)
		if err != nil {
			log.Error().Err(err).Str("csv", cfg.Telemetry.CSV).Msg("Opening trip output")
			return 1
		}
		defer closeCSV()
		sinks = append(sinks, telemetry.NewCSVSink(out))
	}

	var publisher *network.Publisher
	if cfg.Telemetry.UDP != "" {
		publisher, err = network.NewPublisher(cfg.Telemetry.UDP, runID, *log)
		if err != nil {
			log.Error().Err(err).Msg("Opening telemetry publisher")
			return 1
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}

	opts := []sim.Option{
		sim.WithRunID(runID),
		sim.WithLogger(*log),
		sim.WithSeed(cfg.Seed),
		sim.WithTiming(cfg.SimTiming()),
		sim.WithSink(sinks),
	}
	if cfg.Pace > 0 {
		opts = append(opts, sim.WithPacer(timer.Pacer{Speed: cfg.Pace}))
	}

	s, err := definition.Build(def, opts...)
	if err != nil {
		log.Error().Err(err).Str("input", flags.input).Msg("Building simulation")
		return 1
	}

	if publisher != nil {
		elevators := 0
		for _, b := range s.Banks() {
			elevators += len(b.Elevators())
		}

		err := publisher.Started(types.RunStarted{
			Floors:    s.Building.NumFloors(),
			Banks:     len(s.Banks()),
			Elevators: elevators,
			People:    len(s.Persons()),
		})
		if err != nil {
			log.Warn().Err(err).Msg("Publishing run start")
		}
	}

	/*
	 * Run until done, interrupted or past the time limit
	 */
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if until := cfg.Until(); until > 0 {
		err = s.RunUntil(ctx, until)
	} else {
		err = s.Run(ctx)
	}

	if publisher != nil {
		finished := types.RunFinished{Trips: len(collector.Trips), EndSecs: s.Now().Seconds()}
		if err := publisher.Finished(finished); err != nil {
			log.Warn().Err(err).Msg("Publishing run finish")
		}
	}

	telemetry.LogSummary(*log, telemetry.Summarize(collector.Trips))

	if errors.Is(err, context.Canceled) {
		log.Warn().Dur("t", s.Now()).Msg("Simulation interrupted")
		return 0
	}

	if err != nil {
		log.Error().Err(err).Msg("Simulation failed")
		return 1
	}

	return 0
}
