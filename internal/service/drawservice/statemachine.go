package drawservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
)

type Event string

const (
	EventDeadline Event = "deadline"
	EventDrawn    Event = "drawn"
	EventAdvanced Event = "advanced"
)

var ErrInvalidTransition = errors.New("invalid draw phase transition")

var transitions = map[domain.Phase]map[Event]domain.Phase{
	domain.PhaseCountingDown: {EventDeadline: domain.PhaseDrawing},
	domain.PhaseDrawing:      {EventDrawn: domain.PhaseSettling},
	domain.PhaseSettling:     {EventAdvanced: domain.PhaseCountingDown},
}

// NextPhase returns the phase reached from cur on evt.
func NextPhase(cur domain.Phase, evt Event) (domain.Phase, error) {
	if next, ok := transitions[cur][evt]; ok {
		return next, nil
	}
	return cur, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, cur, evt)
}

// AlignDeadline returns the first multiple of interval since the Unix epoch
// strictly after now, so every instance computes the same deadline.
func AlignDeadline(now time.Time, interval time.Duration) time.Time {
	secs := int64(interval / time.Second)
	if secs < 1 {
		secs = 1
	}
	return time.Unix((now.Unix()/secs+1)*secs, 0).UTC()
}
