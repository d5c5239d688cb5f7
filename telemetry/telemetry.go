/*
 * Package telemetry records completed trips.
 */
package telemetry

import (
	"errors"
	"sort"
	"time"

	"github.com/dandesousa/elevator-simulation/types"
)

type Sink interface {
	Record(trip types.Trip) error
}

type SinkFunc func(trip types.Trip) error

func (fn SinkFunc) Record(trip types.Trip) error {
	return fn(trip)
}

// Multi records every trip in each sink and joins their errors.
type Multi []Sink

func (sinks Multi) Record(trip types.Trip) error {
	var errs []error
	for _, sink := range sinks {
		if err := sink.Record(trip); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every trip.
var Discard Sink = SinkFunc(func(types.Trip) error { return nil })

type Collector struct {
	Trips []types.Trip
}

func (c *Collector) Record(trip types.Trip) error {
	c.Trips = append(c.Trips, trip)
	return nil
}

type Summary struct {
	Trips        int
	MeanWait     time.Duration
	MedianWait   time.Duration
	MaxWait      time.Duration
	MeanTravel   time.Duration
	MedianTravel time.Duration
}

func median(values []time.Duration) time.Duration {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]time.Duration(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func Summarize(trips []types.Trip) Summary {
	summary := Summary{Trips: len(trips)}
	if len(trips) == 0 {
		return summary
	}

	waits := make([]time.Duration, len(trips))
	travels := make([]time.Duration, len(trips))
	var totalWait, totalTravel time.Duration

	for i, trip := range trips {
		waits[i] = trip.Wait()
		travels[i] = trip.Travel
		totalWait += waits[i]
		totalTravel += travels[i]

		if waits[i] > summary.MaxWait {
			summary.MaxWait = waits[i]
		}
	}

	summary.MeanWait = totalWait / time.Duration(len(trips))
	summary.MeanTravel = totalTravel / time.Duration(len(trips))
	summary.MedianWait = median(waits)
	summary.MedianTravel = median(travels)

	return summary
}
