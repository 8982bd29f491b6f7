package game

import (
	"testing"

	"bomberboy/internal/core"
)

func TestIntentDerivePriority(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		want   Event
		ok     bool
	}{
		{"idle", Intent{0, 0}, StopDown, false},
		{"down", Intent{0, 1}, MoveDown, true},
		{"up", Intent{0, -1}, MoveUp, true},
		{"right", Intent{1, 0}, MoveRight, true},
		{"left", Intent{-1, 0}, MoveLeft, true},
		{"down beats right", Intent{1, 1}, MoveDown, true},
		{"down beats left", Intent{-1, 1}, MoveDown, true},
		{"up beats right", Intent{1, -1}, MoveUp, true},
		{"up beats left", Intent{-1, -1}, MoveUp, true},
		{"vertical canceled, right remains", Intent{1, 0}, MoveRight, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.intent.Derive()
			if got != tc.want || ok != tc.ok {
				t.Fatalf("Derive() = (%v,%v), want (%v,%v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestIntentEdgesCancel(t *testing.T) {
	// Holding both horizontal keys nets to zero; releasing one restores
	// the other.
	var i Intent
	i.press(core.KeyLeft)
	i.press(core.KeyRight)
	if _, ok := i.Derive(); ok {
		t.Fatal("opposed keys should derive no movement")
	}

	i.release(core.KeyRight)
	if ev, _ := i.Derive(); ev != MoveLeft {
		t.Fatalf("after release = %v, want MoveLeft", ev)
	}

	i.release(core.KeyLeft)
	if _, ok := i.Derive(); ok {
		t.Fatal("all released should derive no movement")
	}
}

func TestEventTerminal(t *testing.T) {
	for _, ev := range []Event{Win, Die} {
		if !ev.Terminal() {
			t.Errorf("%v.Terminal() = false, want true", ev)
		}
	}
	for _, ev := range []Event{StopDown, MoveUp, IncreaseSpeed} {
		if ev.Terminal() {
			t.Errorf("%v.Terminal() = true, want false", ev)
		}
	}
}

func TestStanceMatchesDirection(t *testing.T) {
	want := map[Event]Event{
		MoveUp:    StopUp,
		MoveDown:  StopDown,
		MoveLeft:  StopLeft,
		MoveRight: StopRight,
	}
	for mv, st := range want {
		if stance[mv] != st {
			t.Errorf("stance[%v] = %v, want %v", mv, stance[mv], st)
		}
	}
}
