package telemetry

import (
	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

type LogSink struct {
	log   zerolog.Logger
	level zerolog.Level
}

func NewLogSink(log zerolog.Logger, level zerolog.Level) *LogSink {
	return &LogSink{log: log, level: level}
}

func (sink *LogSink) Record(trip types.Trip) error {
	sink.log.WithLevel(sink.level).
		Int("person", trip.Person).
		Int("elevator", trip.Elevator).
		Int("from", trip.Origin).
		Int("to", trip.Destination).
		Stringer("dirn", trip.Direction).
		Str("event", trip.Description).
		Dur("called", trip.CalledAt).
		Dur("wait", trip.Wait()).
		Dur("travel", trip.Travel).
		Msg("Trip completed")

	return nil
}

func LogSummary(log zerolog.Logger, summary Summary) {
	log.Info().
		Int("trips", summary.Trips).
		Dur("mean_wait", summary.MeanWait).
		Dur("median_wait", summary.MedianWait).
		Dur("max_wait", summary.MaxWait).
		Dur("mean_travel", summary.MeanTravel).
		Dur("median_travel", summary.MedianTravel).
		Msg("Simulation summary")
}
