package casteljau

import (
	"testing"
)

func TestModeNext(t *testing.T) {
	tests := []struct {
		from       Mode
		action     Action
		havePoints bool
		want       Mode
	}{
		{Idle, ToggleAdding, false, Adding},
		{Adding, ToggleAdding, false, Idle},
		{Removing, ToggleAdding, true, Adding},
		{Removing, ToggleAdding, false, Adding},

		{Idle, ToggleRemoving, true, Removing},
		{Idle, ToggleRemoving, false, Idle},
		{Removing, ToggleRemoving, true, Idle},
		{Removing, ToggleRemoving, false, Idle},
		{Adding, ToggleRemoving, true, Removing},
		{Adding, ToggleRemoving, false, Idle},

		{Idle, ToggleCrossplot, true, Idle},
		{Adding, ToggleCrossplot, true, Adding},
		{Removing, ToggleCrossplot, true, Removing},

		{Removing, Reset, true, Idle},
		{Adding, Reset, true, Adding},
		{Idle, Reset, true, Idle},
	}
	for _, tt := range tests {
		if got := tt.from.Next(tt.action, tt.havePoints); got != tt.want {
			t.Errorf("%s.Next(%s, %t) = %s, want %s", tt.from, tt.action, tt.havePoints, got, tt.want)
		}
	}
}

func TestModeExclusive(t *testing.T) {
	// No sequence of actions can leave the controller in a mode other than
	// the three defined ones.
	actions := []Action{ToggleAdding, ToggleRemoving, ToggleCrossplot, Reset}
	modes := []Mode{Idle, Adding, Removing}
	for _, m := range modes {
		for _, a := range actions {
			for _, have := range []bool{false, true} {
				if got := m.Next(a, have); got > Removing {
					t.Errorf("%s.Next(%s, %t) = %s", m, a, have, got)
				}
			}
		}
	}
}

func TestModeString(t *testing.T) {
	diff(t, "idle", Idle.String())
	diff(t, "adding", Adding.String())
	diff(t, "removing", Removing.String())
	diff(t, "Mode(9)", Mode(9).String())
	diff(t, "toggle-crossplot", ToggleCrossplot.String())
	diff(t, "click", ClickEvent.String())
}
