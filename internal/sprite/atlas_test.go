package sprite

import "testing"

func TestBuiltinSheetsRegistered(t *testing.T) {
	for _, name := range []string{"bomberboy_white", "bomberboy_black"} {
		s, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Name() = %q, expected %q", s.Name(), name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no_such_sheet"); err == nil {
		t.Error("Lookup of unknown sheet should return an error")
	}
}

func TestSheetFrames(t *testing.T) {
	s, err := Lookup("bomberboy_white")
	if err != nil {
		t.Fatal(err)
	}

	required := []FrameID{
		StandUp, StandDown, StandLeft, StandRight,
		MoveUp1, MoveUp2, MoveDown1, MoveDown2,
		MoveLeft1, MoveLeft2, MoveRight1, MoveRight2,
		Win1, Win2, Win3,
		DieDown, DieRight, DieUp, DieLeft,
		Die1, Die3, Die4, Die5, Die6,
	}
	for _, id := range required {
		if !s.Has(id) {
			t.Errorf("sheet missing frame %q", id)
		}
		if s.Frame(id).HeightPx <= 0 {
			t.Errorf("frame %q has non-positive height", id)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register of duplicate sheet should panic")
		}
	}()
	Register(NewSheet("bomberboy_white", nil))
}
