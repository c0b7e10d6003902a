package gpio

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickTogglesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := NewSink(log, "GPIOC", 13)

	s.Tick()
	s.Tick()
	s.Tick()

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), `"level":"high"`)
	assert.Contains(t, string(lines[1]), `"level":"low"`)
	assert.Contains(t, string(lines[2]), `"level":"high"`)
	assert.Contains(t, string(lines[0]), `"port":"GPIOC"`)
	assert.Contains(t, string(lines[0]), `"pin":13`)
}
