// Package script reads recorded editing sessions and replays them against a
// [casteljau.Controller].
//
// A session is a YAML document listing steps in the order they happened.
// Each step is either a toggle action or a pointer event:
//
//	steps:
//	  - action: toggle-adding
//	  - click: [300, 50]
//	  - click: [350, 100]
//	  - action: toggle-adding
//	  - down: [300, 50]
//	  - move: [320, 70]
//	  - up: [320, 70]
//	  - action: toggle-crossplot
//
// Valid actions are toggle-adding, toggle-removing, toggle-crossplot and
// reset.
package script

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/casteljau"
)

// Step is a single recorded step. Exactly one of its fields is set.
type Step struct {
	Action casteljau.Action
	Event  casteljau.Event
}

func (s Step) String() string {
	if s.Action != 0 {
		return s.Action.String()
	}
	return s.Event.String()
}

// Script is a recorded session.
type Script struct {
	Steps []Step
}

type rawScript struct {
	Steps []rawStep `yaml:"steps"`
}

type rawStep struct {
	Action string      `yaml:"action,omitempty"`
	Click  *[2]float64 `yaml:"click,omitempty"`
	Down   *[2]float64 `yaml:"down,omitempty"`
	Move   *[2]float64 `yaml:"move,omitempty"`
	Up     *[2]float64 `yaml:"up,omitempty"`
}

var actions = []casteljau.Action{
	casteljau.ToggleAdding,
	casteljau.ToggleRemoving,
	casteljau.ToggleCrossplot,
	casteljau.Reset,
}

func parseAction(s string) (casteljau.Action, error) {
	for _, a := range actions {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

func (raw rawStep) step() (Step, error) {
	var (
		step Step
		n    int
	)
	if raw.Action != "" {
		a, err := parseAction(raw.Action)
		if err != nil {
			return Step{}, err
		}
		step.Action = a
		n++
	}
	for _, ev := range []struct {
		kind casteljau.EventKind
		pos  *[2]float64
	}{
		{casteljau.ClickEvent, raw.Click},
		{casteljau.DownEvent, raw.Down},
		{casteljau.MoveEvent, raw.Move},
		{casteljau.UpEvent, raw.Up},
	} {
		if ev.pos == nil {
			continue
		}
		step.Event = casteljau.Event{Kind: ev.kind, Pos: casteljau.Pt(ev.pos[0], ev.pos[1])}
		n++
	}
	if n != 1 {
		return Step{}, fmt.Errorf("step must have exactly one of action, click, down, move or up, has %d", n)
	}
	return step, nil
}

// Parse decodes a recorded session.
func Parse(data []byte) (*Script, error) {
	var raw rawScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	s := &Script{Steps: make([]Step, 0, len(raw.Steps))}
	for i, rs := range raw.Steps {
		step, err := rs.step()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

// Read decodes a recorded session from r.
func Read(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Load reads and decodes the recorded session at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Replay performs every step of s on c, in order.
func (s *Script) Replay(c *casteljau.Controller) {
	log := casteljau.Logger()
	for i, step := range s.Steps {
		log.Debug("replaying step", slog.Int("index", i+1), slog.String("step", step.String()))
		if step.Action != 0 {
			c.Do(step.Action)
		} else {
			c.Handle(step.Event)
		}
	}
}
