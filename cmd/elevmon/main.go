package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dandesousa/elevator-simulation/logger"
	"github.com/dandesousa/elevator-simulation/network"
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

const SILENCE_TIMEOUT = 10 * time.Second

func main() {
	port := flag.Int("port", 9400, "UDP port to listen on")
	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.GetLoggerConfigured(level)

	conn, err := network.Listen(fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Error().Err(err).Int("port", *port).Msg("Listening")
		os.Exit(1)
	}
	defer conn.Close()

	if localIP, err := network.LocalIP(); err == nil {
		log.Info().Msgf("Listening for telemetry on %s:%d", localIP, *port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	incomingMessageChannel := make(chan types.Envelope)
	watchedMessageChannel := make(chan types.Envelope)
	silentChannel := make(chan time.Duration)

	go func() {
		if err := network.ListenForMessages(ctx, conn, incomingMessageChannel); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("Receiving telemetry")
			stop()
		}
	}()
	go network.Watch(ctx, SILENCE_TIMEOUT, incomingMessageChannel, watchedMessageChannel, silentChannel)

	for {
		select {
		case <-ctx.Done():
			return

		case quiet := <-silentChannel:
			log.Warn().Dur("quiet", quiet).Msg("No telemetry received")

		case msg := <-watchedMessageChannel:
			handleMessage(log.With().Str("run", msg.Header.RunID).Logger(), msg)
		}
	}
}

func handleMessage(log zerolog.Logger, msg types.Envelope) {
	switch msg.Header.Type {
	case types.RUN_STARTED:
		started, err := network.GetMsgContent[types.RunStarted](msg)
		if err != nil {
			return
		}

		log.Info().
			Int("floors", started.Floors).
			Int("banks", started.Banks).
			Int("elevators", started.Elevators).
			Int("people", started.People).
			Msg("Run started")

	case types.TRIP:
		trip, err := network.GetMsgContent[types.TripReport](msg)
		if err != nil {
			return
		}

		log.Info().
			Int("seq", msg.Header.Seq).
			Int("person", trip.Person).
			Int("elevator", trip.Elevator).
			Int("from", trip.Origin).
			Int("to", trip.Destination).
			Float64("wait_secs", trip.ArrivedSecs-trip.CalledSecs).
			Float64("travel_secs", trip.TravelSecs).
			Str("event", trip.Description).
			Msg("Trip")

	case types.RUN_FINISHED:
		finished, err := network.GetMsgContent[types.RunFinished](msg)
		if err != nil {
			return
		}

		log.Info().
			Int("trips", finished.Trips).
			Float64("end_secs", finished.EndSecs).
			Msg("Run finished")
	}
}
