package saunum

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/goburrow/modbus"
)

// Transport is the Modbus session the client drives. Implementations
// own framing, sockets and per-request timeouts; the client owns
// register semantics. goburrow/modbus backs the production
// implementation, tests substitute fakes.
type Transport interface {
	Connect() error
	Close() error
	ReadHoldingRegisters(ctx context.Context, address, quantity uint16) ([]uint16, error)
	WriteRegister(ctx context.Context, address, value uint16) error
}

// tcpTransport adapts goburrow's TCP handler to the Transport contract.
type tcpTransport struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

func newTCPTransport(host string, port int, unitID uint8, timeout time.Duration) *tcpTransport {
	h := modbus.NewTCPClientHandler(net.JoinHostPort(host, strconv.Itoa(port)))
	h.Timeout = timeout
	h.SlaveId = unitID

	return &tcpTransport{
		handler: h,
		client:  modbus.NewClient(h),
	}
}

func (t *tcpTransport) Connect() error { return t.handler.Connect() }

func (t *tcpTransport) Close() error { return t.handler.Close() }

// ReadHoldingRegisters reads quantity registers and unpacks the
// big-endian payload into words. The handler enforces the request
// timeout; the context is only consulted up front, so a cancellation
// mid-flight leaves the session for the caller to close.
func (t *tcpTransport) ReadHoldingRegisters(ctx context.Context, address, quantity uint16) ([]uint16, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := t.client.ReadHoldingRegisters(address, quantity)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(raw), nil
}

func (t *tcpTransport) WriteRegister(ctx context.Context, address, value uint16) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := t.client.WriteSingleRegister(address, value)
	return err
}

// unpackRegisters splits a big-endian register payload into words.
func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
