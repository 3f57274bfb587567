// Package saunum is a Modbus TCP client for Saunum sauna controllers.
// It reads the controller's state block into typed snapshots and
// validates control writes against the device register map before
// anything reaches the wire.
package saunum

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Defaults applied to Config fields left zero.
const (
	DefaultPort   = 502
	DefaultUnitID = 1

	// DefaultTimeout bounds one request/response round trip.
	DefaultTimeout = 10 * time.Second

	// DefaultWriteSettle is how long the controller needs to apply an
	// accepted write before a re-read reflects it.
	DefaultWriteSettle = time.Second
)

// Config describes one controller connection.
type Config struct {
	Host    string        // required
	Port    int           // default 502
	UnitID  uint8         // Modbus unit identifier, default 1
	Timeout time.Duration // per-request timeout, default 10s

	// WriteSettle is the pause after each accepted write. Zero means
	// DefaultWriteSettle; negative disables the pause.
	WriteSettle time.Duration

	// Logger receives diagnostics. Nil means no logging; nothing in
	// this package writes to a global logger.
	Logger *zap.Logger

	// Transport overrides the goburrow-backed TCP session. Tests use
	// this to substitute fakes.
	Transport Transport
}

// Client talks to one controller over one Modbus TCP session.
// Operations are serialized internally because the session is shared
// mutable state; concurrent calls queue rather than interleave.
type Client struct {
	mu        sync.Mutex
	cfg       Config
	log       *zap.Logger
	tr        Transport
	connected bool
}

// New builds a disconnected client. Use Dial to construct and connect
// in one step.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: host required", ErrInvalidValue)
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.UnitID == 0 {
		cfg.UnitID = DefaultUnitID
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	switch {
	case cfg.WriteSettle == 0:
		cfg.WriteSettle = DefaultWriteSettle
	case cfg.WriteSettle < 0:
		cfg.WriteSettle = 0
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tr := cfg.Transport
	if tr == nil {
		tr = newTCPTransport(cfg.Host, cfg.Port, cfg.UnitID, cfg.Timeout)
	}

	return &Client{cfg: cfg, log: log, tr: tr}, nil
}

// Dial builds a client and connects it, so a caller never observes a
// constructed-but-unconnected client through this path.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// WithClient dials cfg, runs fn, and closes the session on every exit
// path, including when fn fails.
func WithClient(ctx context.Context, cfg Config, fn func(*Client) error) error {
	c, err := Dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

// Host returns the configured controller address.
func (c *Client) Host() string { return c.cfg.Host }

// Connect opens the transport session. Calling it on an already
// connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	op := fmt.Sprintf("connect %s:%d", c.cfg.Host, c.cfg.Port)
	if err := ctx.Err(); err != nil {
		return translate(op, err)
	}
	if err := c.tr.Connect(); err != nil {
		return translate(op, err)
	}

	c.connected = true
	c.log.Info("connected",
		zap.String("host", c.cfg.Host),
		zap.Int("port", c.cfg.Port),
		zap.Uint8("unit_id", c.cfg.UnitID))
	return nil
}

// Close releases the transport session. It never fails: a close error
// on a session being discarded is logged and dropped. Safe to call
// repeatedly.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return
	}
	c.connected = false

	if err := c.tr.Close(); err != nil {
		c.log.Warn("close failed", zap.Error(err))
		return
	}
	c.log.Info("closed", zap.String("host", c.cfg.Host))
}

// IsConnected reports whether the session is open. It performs no IO.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// GetData reads the full state block and decodes it. The read is
// atomic: one round trip that yields either a complete snapshot or an
// error, never a partial result.
func (c *Client) GetData(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	const op = "read state"

	if !c.connected {
		return nil, fmt.Errorf("%s: %w: not connected", op, ErrConnection)
	}

	regs, err := c.tr.ReadHoldingRegisters(ctx, regBase, regCount)
	if err != nil {
		terr := translate(op, err)
		c.dropIfDead(terr)
		return nil, terr
	}

	snap, err := decodeSnapshot(regs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("state read",
		zap.Bool("session_active", snap.SessionActive),
		zap.Float64("current_temp", snap.CurrentTemperature),
		zap.Bool("alarm", snap.Alarms.Any()))
	return &snap, nil
}

// ---- CONTROL WRITES ----
// Each setter validates offline, encodes, and writes one register.
// None of them re-read state; the caller decides when to refresh.

// StartSession begins a sauna session with the currently configured
// settings.
func (c *Client) StartSession(ctx context.Context) error {
	return c.writeRegister(ctx, "start session", regSessionActive, encodeBool(true))
}

// StopSession ends the running sauna session.
func (c *Client) StopSession(ctx context.Context) error {
	return c.writeRegister(ctx, "stop session", regSessionActive, encodeBool(false))
}

// SetTargetTemperature sets the target in °C: zero restores the device
// default, anything else must fall in MinTemperature..MaxTemperature.
func (c *Client) SetTargetTemperature(ctx context.Context, celsius int) error {
	if err := validateTargetTemperature(celsius); err != nil {
		return err
	}
	return c.writeRegister(ctx, "set target temperature", regTargetTemp, uint16(celsius))
}

// SetSaunaDuration sets the session length in minutes, up to
// MaxSaunaDuration. Zero restores the device default.
func (c *Client) SetSaunaDuration(ctx context.Context, minutes int) error {
	if err := validateSaunaDuration(minutes); err != nil {
		return err
	}
	return c.writeRegister(ctx, "set sauna duration", regSaunaDuration, uint16(minutes))
}

// SetFanDuration sets the fan run length in minutes, up to
// MaxFanDuration. Zero restores the device default.
func (c *Client) SetFanDuration(ctx context.Context, minutes int) error {
	if err := validateFanDuration(minutes); err != nil {
		return err
	}
	return c.writeRegister(ctx, "set fan duration", regFanDuration, uint16(minutes))
}

// SetFanSpeed sets the ventilation speed. Only documented speeds are
// accepted for writes, unknown values remain read-only.
func (c *Client) SetFanSpeed(ctx context.Context, speed FanSpeed) error {
	if err := validateFanSpeed(speed); err != nil {
		return err
	}
	return c.writeRegister(ctx, "set fan speed", regFanSpeed, uint16(speed))
}

// SetSaunaType selects the climate program. Only documented programs
// are accepted for writes.
func (c *Client) SetSaunaType(ctx context.Context, typ SaunaType) error {
	if err := validateSaunaType(typ); err != nil {
		return err
	}
	return c.writeRegister(ctx, "set sauna type", regSaunaType, uint16(typ))
}

// SetLight switches the cabin light.
func (c *Client) SetLight(ctx context.Context, on bool) error {
	return c.writeRegister(ctx, "set light", regLight, encodeBool(on))
}

// writeRegister is the single write path: connected precondition,
// transport write, fault translation, settle delay.
func (c *Client) writeRegister(ctx context.Context, op string, address, value uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return fmt.Errorf("%s: %w: not connected", op, ErrConnection)
	}

	if err := c.tr.WriteRegister(ctx, address, value); err != nil {
		terr := translate(op, err)
		c.dropIfDead(terr)
		return terr
	}

	c.log.Debug("register written",
		zap.String("op", op),
		zap.Uint16("address", address),
		zap.Uint16("value", value))

	return c.settle(ctx, op)
}

// settle gives the controller time to apply an accepted write.
func (c *Client) settle(ctx context.Context, op string) error {
	if c.cfg.WriteSettle <= 0 {
		return nil
	}

	t := time.NewTimer(c.cfg.WriteSettle)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return translate(op+": settle", ctx.Err())
	case <-t.C:
		return nil
	}
}

// dropIfDead marks the session disconnected after a connection-class
// fault so the caller can Connect again instead of reusing a dead
// handle. Must be called with the mutex held.
func (c *Client) dropIfDead(err error) {
	if !errors.Is(err, ErrConnection) {
		return
	}
	c.connected = false
	if cerr := c.tr.Close(); cerr != nil {
		c.log.Debug("close after fault", zap.Error(cerr))
	}
}
