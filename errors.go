package saunum

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/goburrow/modbus"
)

// Error taxonomy. Every failure returned by this package wraps exactly
// one of the sentinels below, and each sentinel wraps Err, so callers
// dispatch with errors.Is at whatever granularity they need. The
// underlying transport fault stays in the chain for diagnostics.
var (
	// Err is the root of the taxonomy.
	Err = errors.New("saunum")

	// ErrConnection covers connect failures and operations attempted
	// while disconnected.
	ErrConnection = fmt.Errorf("%w: connection", Err)

	// ErrTimeout is a connection failure where the controller did not
	// answer within the configured timeout. It also matches
	// ErrConnection, so retry policy can treat it separately or not.
	ErrTimeout = fmt.Errorf("%w: timeout", ErrConnection)

	// ErrCommunication is a protocol-level fault on an open session,
	// such as a Modbus exception response.
	ErrCommunication = fmt.Errorf("%w: communication", Err)

	// ErrInvalidData is a structurally received but unusable response,
	// e.g. a state block of the wrong length.
	ErrInvalidData = fmt.Errorf("%w: invalid data", Err)

	// ErrInvalidValue is a caller-supplied argument outside the
	// register map's domain, reported before any network call.
	ErrInvalidValue = fmt.Errorf("%w: invalid value", Err)
)

// translate maps a transport fault into the package taxonomy. A
// transport error never crosses the package boundary raw.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isTimeout(err):
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	case isModbusFault(err):
		return fmt.Errorf("%s: %w: %w", op, ErrCommunication, err)
	case isNetworkFault(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConnection, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrCommunication, err)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// isModbusFault matches exception responses from the controller.
func isModbusFault(err error) bool {
	var me *modbus.ModbusError
	return errors.As(err, &me)
}

func isNetworkFault(err error) bool {
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var oe *net.OpError
	return errors.As(err, &oe)
}
