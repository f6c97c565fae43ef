package app_test

import (
	"testing"
	"time"

	"cube-mapping/internal/app"

	"github.com/stretchr/testify/assert"
)

func TestFPSLimiterPaces(t *testing.T) {
	l := app.NewFPSLimiter(200)
	start := time.Now()
	for i := 0; i < 10; i++ {
		l.Wait()
	}
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestFPSLimiterDisabled(t *testing.T) {
	l := app.NewFPSLimiter(0)
	start := time.Now()
	for i := 0; i < 1000; i++ {
		l.Wait()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
