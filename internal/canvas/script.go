package canvas

import (
	"fmt"
	"strings"

	"paint-canvas/internal/core"

	"gopkg.in/yaml.v3"
)

// Phase is the kind of a touch sample.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

var phaseNames = [...]string{"start", "move", "end", "cancel"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range phaseNames {
		if n == name {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown touch phase %q", name)
}

// TouchEvent is one recorded touch sample in viewport coordinates.
type TouchEvent struct {
	Phase Phase   `yaml:"phase" json:"phase"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
}

// Dispatch feeds one sample to the state machine.
func (c *Canvas) Dispatch(ev TouchEvent) {
	switch ev.Phase {
	case PhaseStart:
		c.TouchStart(ev.X, ev.Y)
	case PhaseMove:
		c.TouchMove(ev.X, ev.Y)
	case PhaseEnd:
		c.TouchEnd()
	case PhaseCancel:
		c.TouchCancel()
	}
}

// Replay dispatches every event in order.
func (c *Canvas) Replay(events []TouchEvent) {
	for _, ev := range events {
		c.Dispatch(ev)
	}
}

// DecodeScript parses a YAML list of touch events.
func DecodeScript(data []byte) ([]TouchEvent, error) {
	var events []TouchEvent
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode touch script: %w", err)
	}
	return events, nil
}

// Scribble generates random gestures over a viewport of the given size.
// Samples stray up to a cell outside the viewport so bounds handling is
// exercised, and some gestures end in a cancel.
func Scribble(rng *core.RNG, size core.Size, gestures, samples int) []TouchEvent {
	if size.Empty() || gestures <= 0 {
		return nil
	}
	margin := float64(size.W) / 10
	point := func() (float64, float64) {
		return rng.Float64Range(-margin, float64(size.W)+margin), rng.Float64Range(-margin, float64(size.H)+margin)
	}
	events := make([]TouchEvent, 0, gestures*(samples+2))
	for g := 0; g < gestures; g++ {
		x, y := point()
		events = append(events, TouchEvent{Phase: PhaseStart, X: x, Y: y})
		for s := 0; s < samples; s++ {
			if rng.IntN(4) == 0 {
				// Linger on the same spot like a slow finger.
				events = append(events, TouchEvent{Phase: PhaseMove, X: x, Y: y})
				continue
			}
			x += rng.Float64Range(-margin/2, margin/2)
			y += rng.Float64Range(-margin/2, margin/2)
			events = append(events, TouchEvent{Phase: PhaseMove, X: x, Y: y})
		}
		end := PhaseEnd
		if rng.IntN(5) == 0 {
			end = PhaseCancel
		}
		events = append(events, TouchEvent{Phase: end})
	}
	return events
}
