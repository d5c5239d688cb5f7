package network

import (
	"fmt"
	"net"
	"sync"

	"github.com/dandesousa/elevator-simulation/types"

	"github.com/libp2p/go-reuseport"
	"github.com/rs/zerolog"
)

/*
 * Publisher sends run telemetry as UDP datagrams to one address.
 * It is a telemetry sink: every completed trip becomes a TRIP message.
 * Delivery is best effort, nothing is resent.
 */
type Publisher struct {
	conn  net.PacketConn
	addr  *net.UDPAddr
	runID string
	log   zerolog.Logger

	mu  sync.Mutex
	seq int
}

func NewPublisher(addr string, runID string, log zerolog.Logger) (*Publisher, error) {
	resolvedAddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", addr, err)
	}

	packetConnection, err := reuseport.ListenPacket("udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("opening udp socket: %w", err)
	}

	return &Publisher{
		conn:  packetConnection,
		addr:  resolvedAddr,
		runID: runID,
		log:   log.With().Str("udp", resolvedAddr.String()).Logger(),
	}, nil
}

func (p *Publisher) nextSeq() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	seq := p.seq
	p.seq++
	return seq
}

func (p *Publisher) Send(encodedMsg []byte) error {
	_, err := p.conn.WriteTo(encodedMsg, p.addr)
	if err != nil {
		return fmt.Errorf("sending to %s: %w", p.addr, err)
	}
	return nil
}

func (p *Publisher) Record(trip types.Trip) error {
	return p.Send(FormatTripMsg(trip, p.runID, p.nextSeq()))
}

func (p *Publisher) Started(started types.RunStarted) error {
	p.log.Debug().Msg("Publishing run start")
	return p.Send(FormatRunStartedMsg(started, p.runID, p.nextSeq()))
}

func (p *Publisher) Finished(finished types.RunFinished) error {
	p.log.Debug().Int("trips", finished.Trips).Msg("Publishing run finish")
	return p.Send(FormatRunFinishedMsg(finished, p.runID, p.nextSeq()))
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}
