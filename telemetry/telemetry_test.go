package telemetry

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dandesousa/elevator-simulation/types"

	"github.com/rs/zerolog"
)

func testTrip(called, arrived, travel time.Duration) types.Trip {
	return types.Trip{
		CalledAt:    called,
		ArrivedAt:   arrived,
		Travel:      travel,
		Person:      3,
		Elevator:    1,
		Origin:      1,
		Destination: 10,
		Direction:   types.Up,
		Distance:    9,
		Description: "start work",
	}
}

func TestCSVSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewCSVSink(&buf)

	if err := sink.Record(testTrip(0, 5*time.Second, 78*time.Second)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := sink.Record(testTrip(time.Second, 2500*time.Millisecond, time.Second)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %q", buf.String())
	}
	if lines[0] != strings.Join(CSV_HEADER, ",") {
		t.Errorf("Expected header %v, got %q", CSV_HEADER, lines[0])
	}
	if lines[1] != "0,5,78,3,1,10,start work,1,9,1" {
		t.Errorf("Unexpected row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "1,2.5,1,") {
		t.Errorf("Unexpected row %q", lines[2])
	}
}

func TestMultiJoinsErrors(t *testing.T) {
	failure := errors.New("disk full")
	collector := &Collector{}

	sinks := Multi{
		collector,
		SinkFunc(func(types.Trip) error { return failure }),
	}

	err := sinks.Record(testTrip(0, 0, 0))
	if !errors.Is(err, failure) {
		t.Errorf("Expected joined error, got %v", err)
	}
	if len(collector.Trips) != 1 {
		t.Errorf("Expected the collector to record despite the failure")
	}
}

func TestSummarize(t *testing.T) {
	trips := []types.Trip{
		testTrip(0, 10*time.Second, 30*time.Second),
		testTrip(0, 20*time.Second, 60*time.Second),
		testTrip(0, 60*time.Second, 90*time.Second),
	}

	summary := Summarize(trips)

	if summary.Trips != 3 {
		t.Errorf("Expected 3 trips, got %d", summary.Trips)
	}
	if summary.MeanWait != 30*time.Second || summary.MedianWait != 20*time.Second {
		t.Errorf("Expected wait mean 30s median 20s, got %s %s", summary.MeanWait, summary.MedianWait)
	}
	if summary.MaxWait != time.Minute {
		t.Errorf("Expected max wait 1m, got %s", summary.MaxWait)
	}
	if summary.MedianTravel != time.Minute {
		t.Errorf("Expected median travel 1m, got %s", summary.MedianTravel)
	}

	if empty := Summarize(nil); empty.Trips != 0 || empty.MeanWait != 0 {
		t.Errorf("Expected empty summary, got %+v", empty)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf), zerolog.InfoLevel)

	if err := sink.Record(testTrip(0, 5*time.Second, 40*time.Second)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"person":3`) || !strings.Contains(out, "Trip completed") {
		t.Errorf("Expected a trip log line, got %q", out)
	}
}
