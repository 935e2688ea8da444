// Package di provides dependency injection container
package di

import (
	"github.com/rs/zerolog"

	"github.com/ssargent/ocrid/pkg/config"
	"github.com/ssargent/ocrid/pkg/logging"
	"github.com/ssargent/ocrid/pkg/ocrid"
)

// CodecFactory builds a codec for a protocol tag
type CodecFactory func(tag uint8) *ocrid.Codec

// Container holds all the dependencies for the application
type Container struct {
	config       *config.Config
	logger       zerolog.Logger
	codecFactory CodecFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		config:       config.DefaultConfig(),
		logger:       logging.Nop(),
		codecFactory: ocrid.NewCodecWithTag,
	}
}

// GetConfig returns the active configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// SetConfig replaces the active configuration
func (c *Container) SetConfig(cfg *config.Config) {
	c.config = cfg
}

// GetLogger returns the application logger
func (c *Container) GetLogger() zerolog.Logger {
	return c.logger
}

// SetLogger replaces the application logger
func (c *Container) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// GetCodec returns a codec for the configured protocol tag
func (c *Container) GetCodec() *ocrid.Codec {
	return c.codecFactory(c.config.ProtocolTag)
}

// GetCodecWithTag returns a codec for tag, ignoring the configured one
func (c *Container) GetCodecWithTag(tag uint8) *ocrid.Codec {
	return c.codecFactory(tag)
}

// SetCodecFactory allows overriding the codec factory (for testing)
func (c *Container) SetCodecFactory(factory CodecFactory) {
	c.codecFactory = factory
}
