package performance

import (
	"time"
)

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples []time.Duration
	sum     time.Duration
	index   int
	filled  bool
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{
		samples: make([]time.Duration, windowSize),
	}
}

// Add records a new sample and updates the rolling average
func (r *RollingAverage) Add(d time.Duration) {
	// Subtract old value if we're overwriting
	if r.filled {
		r.sum -= r.samples[r.index]
	}

	r.samples[r.index] = d
	r.sum += d

	r.index++
	if r.index >= len(r.samples) {
		r.index = 0
		r.filled = true
	}
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	if r.filled {
		return len(r.samples)
	}
	return r.index
}

// Average returns the current rolling average
func (r *RollingAverage) Average() time.Duration {
	count := r.Count()
	if count == 0 {
		return 0
	}
	return r.sum / time.Duration(count)
}

// FrameMonitor tracks the cost of the carousel's update and draw passes.
// It is fed from the main loop only.
type FrameMonitor struct {
	updateTimes *RollingAverage
	drawTimes   *RollingAverage
	frameTimes  *RollingAverage
	frames      int
	transitions int
	startTime   time.Time
}

// Report contains aggregated frame metrics
type Report struct {
	AvgUpdateMs   float64 // Average update pass in milliseconds
	AvgDrawMs     float64 // Average draw pass in milliseconds
	AvgFrameMs    float64 // Average full frame including sleep
	FPS           float64 // Frames per second derived from AvgFrameMs
	Frames        int     // Total frames recorded
	Transitions   int     // Index changes seen
	UptimeSeconds int64
}

// NewMonitor creates a frame monitor averaging over windowSize frames
func NewMonitor(windowSize int) *FrameMonitor {
	return &FrameMonitor{
		updateTimes: NewRollingAverage(windowSize),
		drawTimes:   NewRollingAverage(windowSize),
		frameTimes:  NewRollingAverage(windowSize),
		startTime:   time.Now(),
	}
}

// RecordFrame records the timings of one loop iteration
func (m *FrameMonitor) RecordFrame(update, draw, total time.Duration) {
	m.updateTimes.Add(update)
	m.drawTimes.Add(draw)
	m.frameTimes.Add(total)
	m.frames++
}

// RecordTransition counts an index change
func (m *FrameMonitor) RecordTransition() {
	m.transitions++
}

// Report generates a report with current metrics
func (m *FrameMonitor) Report() Report {
	avgFrame := m.frameTimes.Average()

	fps := 0.0
	if avgFrame > 0 {
		fps = float64(time.Second) / float64(avgFrame)
	}

	return Report{
		AvgUpdateMs:   millis(m.updateTimes.Average()),
		AvgDrawMs:     millis(m.drawTimes.Average()),
		AvgFrameMs:    millis(avgFrame),
		FPS:           fps,
		Frames:        m.frames,
		Transitions:   m.transitions,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
