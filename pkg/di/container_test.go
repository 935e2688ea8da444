package di

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssargent/ocrid/pkg/config"
	"github.com/ssargent/ocrid/pkg/ocrid"
)

func TestNewContainer_Defaults(t *testing.T) {
	c := NewContainer()

	assert.Equal(t, config.DefaultConfig(), c.GetConfig())
	assert.Equal(t, ocrid.DefaultProtocolTag, c.GetCodec().ProtocolTag)
}

func TestContainer_CodecFollowsConfig(t *testing.T) {
	c := NewContainer()

	cfg := config.DefaultConfig()
	cfg.ProtocolTag = 9
	c.SetConfig(cfg)

	assert.Equal(t, uint8(9), c.GetCodec().ProtocolTag)
	assert.Equal(t, uint8(3), c.GetCodecWithTag(3).ProtocolTag)
}

func TestContainer_SetCodecFactory(t *testing.T) {
	c := NewContainer()

	var requested []uint8
	c.SetCodecFactory(func(tag uint8) *ocrid.Codec {
		requested = append(requested, tag)
		return ocrid.NewCodecWithTag(tag)
	})

	c.GetCodec()
	c.GetCodecWithTag(5)
	assert.Equal(t, []uint8{77, 5}, requested)
}
