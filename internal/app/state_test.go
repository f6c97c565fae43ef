package app_test

import (
	"testing"

	"cube-mapping/internal/app"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", app.StateRunning.String())
	assert.Equal(t, "closed", app.StateClosed.String())
	assert.Equal(t, "unknown", app.State(7).String())
}
