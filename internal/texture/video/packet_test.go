package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zergon321/reisen"
)

func TestIsStreamPacket(t *testing.T) {
	assert.True(t, isStreamPacket(reisen.StreamVideo, 0, 0))
	assert.False(t, isStreamPacket(reisen.StreamAudio, 0, 0), "audio packets are skipped")
	assert.False(t, isStreamPacket(reisen.StreamVideo, 1, 0), "other video streams are skipped")
}
