package types

import (
	"encoding/json"
)

type MsgTypes int

const (
	RUN_STARTED MsgTypes = iota
	TRIP
	RUN_FINISHED
)

func (msgType MsgTypes) String() string {
	switch msgType {
	case RUN_STARTED:
		return "run_started"
	case TRIP:
		return "trip"
	case RUN_FINISHED:
		return "run_finished"
	default:
		return "unknown"
	}
}

type RunStarted struct {
	Floors    int
	Banks     int
	Elevators int
	People    int
}

type TripReport struct {
	CalledSecs  float64
	ArrivedSecs float64
	TravelSecs  float64
	Person      int
	Elevator    int
	Origin      int
	Destination int
	Direction   Direction
	Distance    int
	Description string
}

type RunFinished struct {
	Trips   int
	EndSecs float64
}

type Header struct {
	Type  MsgTypes
	RunID string
	MsgID string
	Seq   int
}

type Content interface {
	RunStarted | TripReport | RunFinished
}

type Msg[T Content] struct {
	Header  Header
	Content T
}

/*
 * Content is kept raw on the wire so the receiver can pick the
 * content type from the header before decoding it
 */
type Envelope struct {
	Header  Header
	Content json.RawMessage
}

func (msg Msg[T]) ToJson() []byte {
	encodedContent, err := json.Marshal(msg.Content)

	if err != nil {
		panic(err)
	}

	encodedMsg, err := json.Marshal(Envelope{
		Header:  msg.Header,
		Content: encodedContent,
	})

	if err != nil {
		panic(err)
	}

	return encodedMsg
}

func TripToReport(trip Trip) TripReport {
	return TripReport{
		CalledSecs:  trip.CalledAt.Seconds(),
		ArrivedSecs: trip.ArrivedAt.Seconds(),
		TravelSecs:  trip.Travel.Seconds(),
		Person:      trip.Person,
		Elevator:    trip.Elevator,
		Origin:      trip.Origin,
		Destination: trip.Destination,
		Direction:   trip.Direction,
		Distance:    trip.Distance,
		Description: trip.Description,
	}
}
