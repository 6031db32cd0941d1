package parallel

import "testing"

func TestStateSetLevels(t *testing.T) {
	s := NewStateSet()
	a := [32]byte{1}
	b := [32]byte{2}
	if !s.Insert(a, 10) {
		t.Fatal("first insert not new")
	}
	if s.Insert(a, 10) {
		t.Error("second insert reported new")
	}
	if !s.Exists(a, 10) || s.Exists(a, 11) || s.Exists(b, 10) {
		t.Error("Exists disagrees with inserts")
	}
	if !s.Insert(b, 11) {
		t.Error("insert at a new level not new")
	}
	if s.Exists(a, 11) || s.Len() != 1 {
		t.Errorf("level change kept %d states", s.Len())
	}
}
