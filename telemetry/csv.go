package telemetry

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/dandesousa/elevator-simulation/types"
)

var CSV_HEADER = []string{
	"elevator_called_secs",
	"elevator_arrived_secs",
	"travel_secs",
	"person",
	"start_location",
	"end_location",
	"event",
	"direction",
	"distance",
	"elevator",
}

/*
 * CSVSink writes one row per trip and flushes after each row so the
 * log can be followed while the simulation runs
 */
type CSVSink struct {
	writer      *csv.Writer
	wroteHeader bool
}

func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{writer: csv.NewWriter(w)}
}

func secs(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (sink *CSVSink) Record(trip types.Trip) error {
	if !sink.wroteHeader {
		if err := sink.writer.Write(CSV_HEADER); err != nil {
			return err
		}
		sink.wroteHeader = true
	}

	row := []string{
		secs(trip.CalledAt.Seconds()),
		secs(trip.ArrivedAt.Seconds()),
		secs(trip.Travel.Seconds()),
		strconv.Itoa(trip.Person),
		strconv.Itoa(trip.Origin),
		strconv.Itoa(trip.Destination),
		trip.Description,
		strconv.Itoa(int(trip.Direction)),
		strconv.Itoa(trip.Distance),
		strconv.Itoa(trip.Elevator),
	}

	if err := sink.writer.Write(row); err != nil {
		return err
	}

	sink.writer.Flush()
	return sink.writer.Error()
}
