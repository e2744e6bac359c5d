package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionThrottle) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionThrottle)
	f.Set(ActionJump)
	f.DT = 0.05

	if !f.Has(ActionThrottle) || !f.Has(ActionJump) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionBrake) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionThrottle) || f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if f.DT != 0 {
		t.Errorf("Clear should reset DT, got %f", f.DT)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate the map")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:                "None",
		ActionThrottle:            "Throttle",
		ActionToggleReducedMotion: "ToggleReducedMotion",
		ActionFewerBots:           "FewerBots",
		Action(99):                "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), expected)
		}
	}
}

func TestClampFrameDT(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, MinFrameDT},
		{0.0005, MinFrameDT},
		{1.0 / 30.0, 1.0 / 30.0},
		{0.5, MaxFrameDT},
	}
	for _, tc := range tests {
		if got := ClampFrameDT(tc.in); got != tc.expected {
			t.Errorf("ClampFrameDT(%f) = %f, expected %f", tc.in, got, tc.expected)
		}
	}
}
