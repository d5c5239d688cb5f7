package network

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dandesousa/elevator-simulation/types"

	"github.com/libp2p/go-reuseport"
)

const BUFFER_SIZE = 4096
const READ_TIMEOUT = 300

/*
 * Listen opens a UDP socket on addr that other listeners may share
 */
func Listen(addr string) (net.PacketConn, error) {
	return reuseport.ListenPacket("udp4", addr)
}

/*
 * Listen for incoming messages on conn until ctx is cancelled.
 * Datagrams that are not valid envelopes are dropped.
 */
func ListenForMessages(
	ctx context.Context,
	conn net.PacketConn,
	messageChannel chan<- types.Envelope,
) error {

	buffer := make([]byte, BUFFER_SIZE)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		deadline := time.Now().Add(READ_TIMEOUT * time.Millisecond)
		if err := conn.SetReadDeadline(deadline); err != nil {
			return err
		}

		n, _, err := conn.ReadFrom(buffer)

		if err != nil {
			var nErr net.Error
			if errors.As(err, &nErr) && nErr.Timeout() {
				continue
			}
			return err
		}

		envelope, err := DecodeEnvelope(buffer[:n])
		if err != nil {
			continue
		}

		select {
		case messageChannel <- *envelope:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
