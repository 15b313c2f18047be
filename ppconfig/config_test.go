package ppconfig_test

import (
	"strings"
	"testing"

	"github.com/hyfi06/ppt4/ppconfig"
	"github.com/hyfi06/ppt4/ptio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := ppconfig.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DegreeBounds.Min)
	assert.Equal(t, 5, cfg.DegreeBounds.Max)
	assert.Equal(t, ptio.Byte8, cfg.ByteMode())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	yamlDoc := `
degreeBounds:
  min: 3
  max: 4
byteSize: 16
disableShapePruning: true
`
	cfg, err := ppconfig.Load(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DegreeBounds.Min)
	assert.Equal(t, 4, cfg.DegreeBounds.Max)
	assert.Equal(t, ptio.Byte16, cfg.ByteMode())
	assert.True(t, cfg.DisableShapePruning)
}

func TestLoad_RejectsInvalidDegreeBounds(t *testing.T) {
	_, err := ppconfig.Load(strings.NewReader("degreeBounds:\n  min: 5\n  max: 2\n"))
	assert.ErrorIs(t, err, ppconfig.ErrInvalidDegreeBounds)
}

func TestLoad_RejectsInvalidByteSize(t *testing.T) {
	_, err := ppconfig.Load(strings.NewReader("byteSize: 32\n"))
	assert.ErrorIs(t, err, ppconfig.ErrInvalidByteSize)
}
