// Package bridge captures the state of a running machine over a Modbus TCP
// bridge into a machine snapshot.
package bridge

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Config of the bridge connection.
type Config struct {
	Address string // host:port of the bridge
	UnitID  uint8
	Timeout time.Duration
}

var errNoAddress = errors.New("bridge address required")

// Client is a single TCP connection to a bridge.
type Client struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Dial connects to the bridge.
func Dial(cfg Config) (*Client, error) {
	if cfg.Address == "" {
		return nil, errNoAddress
	}

	h := modbus.NewTCPClientHandler(cfg.Address)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to bridge %s: %w", cfg.Address, err)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	if err := c.handler.Close(); err != nil {
		return fmt.Errorf("closing bridge connection: %w", err)
	}
	return nil
}

// ReadHoldingRegisters reads qty holding registers starting at addr.
func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	b, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, fmt.Errorf("reading holding registers 0x%04X+%d: %w", addr, qty, err)
	}
	return unpackRegisters(b, qty)
}

// ReadInputRegisters reads qty input registers starting at addr.
func (c *Client) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	b, err := c.client.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, fmt.Errorf("reading input registers 0x%04X+%d: %w", addr, qty, err)
	}
	return unpackRegisters(b, qty)
}

var errShortResponse = errors.New("short register response")

// unpackRegisters converts the big endian register bytes of a response.
func unpackRegisters(b []byte, qty uint16) ([]uint16, error) {
	if len(b) < 2*int(qty) {
		return nil, fmt.Errorf("%w: %d bytes for %d registers", errShortResponse, len(b), qty)
	}

	regs := make([]uint16, qty)
	for i := range regs {
		regs[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return regs, nil
}
