package bci

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Device is the acquisition hardware contract: start, stop, dispose. The
// actual transport belongs to a vendor SDK and is opaque to this repository.
type Device interface {
	StartAcquisition() error
	StopAcquisition() error
	Close() error
}

// PlaceholderDevice stands in for a vendor SDK binding. Every call succeeds
// and does nothing.
type PlaceholderDevice struct{}

// StartAcquisition is a no-op.
func (PlaceholderDevice) StartAcquisition() error { return nil }

// StopAcquisition is a no-op.
func (PlaceholderDevice) StopAcquisition() error { return nil }

// Close is a no-op.
func (PlaceholderDevice) Close() error { return nil }

// Connector wraps a Device with the fail-soft lifecycle the game uses: device
// errors are logged and swallowed, and acquisition simply does not run.
type Connector struct {
	dev     Device
	log     *zap.Logger
	session string
	running bool
}

// NewConnector wraps dev. A nil logger falls back to a no-op logger.
func NewConnector(dev Device, log *zap.Logger) *Connector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Connector{dev: dev, log: log}
}

// Start begins acquisition under a fresh session id. Failures are logged and
// leave the connector stopped.
func (c *Connector) Start() {
	if c.dev == nil || c.running {
		return
	}
	id := uuid.NewString()
	if err := c.dev.StartAcquisition(); err != nil {
		c.log.Warn("acquisition start failed", zap.String("session", id), zap.Error(err))
		return
	}
	c.session = id
	c.running = true
	c.log.Info("acquisition started", zap.String("session", id))
}

// Stop ends a running acquisition. Failures are logged; the connector is
// considered stopped either way.
func (c *Connector) Stop() {
	if c.dev == nil || !c.running {
		return
	}
	c.running = false
	if err := c.dev.StopAcquisition(); err != nil {
		c.log.Warn("acquisition stop failed", zap.String("session", c.session), zap.Error(err))
		return
	}
	c.log.Info("acquisition stopped", zap.String("session", c.session))
}

// Close stops acquisition if needed and disposes the device.
func (c *Connector) Close() {
	if c.dev == nil {
		return
	}
	c.Stop()
	if err := c.dev.Close(); err != nil {
		c.log.Warn("device dispose failed", zap.Error(err))
	}
}

// Running reports whether acquisition is active.
func (c *Connector) Running() bool { return c.running }

// Session returns the id of the most recent acquisition session.
func (c *Connector) Session() string { return c.session }
