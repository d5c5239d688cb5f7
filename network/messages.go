package network

import (
	"encoding/json"

	"github.com/dandesousa/elevator-simulation/types"

	"github.com/google/uuid"
)

func newHeader(msgType types.MsgTypes, runID string, seq int) types.Header {
	return types.Header{
		Type:  msgType,
		RunID: runID,
		MsgID: uuid.NewString(),
		Seq:   seq,
	}
}

func FormatRunStartedMsg(started types.RunStarted, runID string, seq int) []byte {
	msg := types.Msg[types.RunStarted]{
		Header:  newHeader(types.RUN_STARTED, runID, seq),
		Content: started,
	}

	return msg.ToJson()
}

func FormatTripMsg(trip types.Trip, runID string, seq int) []byte {
	msg := types.Msg[types.TripReport]{
		Header:  newHeader(types.TRIP, runID, seq),
		Content: types.TripToReport(trip),
	}

	return msg.ToJson()
}

func FormatRunFinishedMsg(finished types.RunFinished, runID string, seq int) []byte {
	msg := types.Msg[types.RunFinished]{
		Header:  newHeader(types.RUN_FINISHED, runID, seq),
		Content: finished,
	}

	return msg.ToJson()
}

func DecodeEnvelope(encodedMsg []byte) (*types.Envelope, error) {
	var envelope types.Envelope

	err := json.Unmarshal(encodedMsg, &envelope)

	if err != nil {
		return nil, err
	}

	return &envelope, nil
}

/*
 * The caller picks T from envelope.Header.Type
 */
func GetMsgContent[T types.Content](envelope types.Envelope) (*T, error) {
	var content T

	err := json.Unmarshal(envelope.Content, &content)

	if err != nil {
		return nil, err
	}

	return &content, nil
}
