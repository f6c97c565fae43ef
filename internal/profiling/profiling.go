package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU timings for the render loop.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("renderer.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest buckets, slowest first.
// Example: "renderer.Render:4.2ms, glfw.SwapBuffers:2.1ms"
func TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	ss := Snapshot()
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+FormatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0".
func FormatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	return strings.TrimSuffix(s, ".0") + "ms"
}

// FrameCounter counts frames and reports the rate once per interval.
type FrameCounter struct {
	interval time.Duration
	last     time.Time
	frames   int
}

// NewFrameCounter starts counting at now.
func NewFrameCounter(interval time.Duration, now time.Time) *FrameCounter {
	return &FrameCounter{interval: interval, last: now}
}

// Tick records one frame. When an interval has elapsed it returns the
// frames per second over that interval and true.
func (f *FrameCounter) Tick(now time.Time) (float64, bool) {
	f.frames++
	elapsed := now.Sub(f.last)
	if elapsed < f.interval {
		return 0, false
	}
	fps := float64(f.frames) / elapsed.Seconds()
	f.frames = 0
	f.last = now
	return fps, true
}
