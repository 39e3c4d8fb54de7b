package domain

import (
	"time"
)

const (
	PostureGood = "Good"
	PostureFair = "Fair"
	PosturePoor = "Poor"

	// PostureSampleSeconds is the simulated interval between two readings.
	PostureSampleSeconds = 5
)

// PostureSession is a simulated live posture check. Readings are random;
// nothing is measured.
type PostureSession struct {
	Current        string    `json:"currentPosture"`
	Warnings       int       `json:"warningCount"`
	GoodSeconds    int       `json:"timeInGoodPosture"`
	Samples        int       `json:"samples"`
	StartedAt      time.Time `json:"startedAt"`
	ElapsedSeconds int       `json:"elapsedSeconds"`
}

func NewPostureSession(now time.Time) *PostureSession {
	return &PostureSession{
		Current:   PostureGood,
		StartedAt: now.UTC(),
	}
}

// Observe applies one random draw r in [0,1).
func (s *PostureSession) Observe(r float64) {
	s.Samples++
	switch {
	case r < 0.2:
		s.Current = PosturePoor
		s.Warnings++
	case r < 0.4:
		s.Current = PostureFair
	default:
		s.Current = PostureGood
		s.GoodSeconds += PostureSampleSeconds
	}
}

func (s *PostureSession) Tick(now time.Time) {
	elapsed := int(now.Sub(s.StartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	s.ElapsedSeconds = elapsed
}
