package core

import "testing"

func TestInputFrameHeldKeys(t *testing.T) {
	f := NewInputFrame()
	f.Hold(KeyLeft)
	f.Hold(KeyJump)

	if !f.IsHeld(KeyLeft) || !f.IsHeld(KeyJump) {
		t.Error("held keys should be reported")
	}
	if f.IsHeld(KeyRight) || f.IsHeld(KeyUp) {
		t.Error("keys not held should not be reported")
	}
}

func TestInputFrameActionQueue(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionShoot)
	f.Push(ActionShoot)
	f.Push(ActionNone)
	f.Push(ActionRestart)

	if f.Count(ActionShoot) != 2 {
		t.Errorf("Count(Shoot) = %d, expected 2", f.Count(ActionShoot))
	}
	if !f.Has(ActionRestart) {
		t.Error("restart should be queued")
	}
	if len(f.Actions) != 3 {
		t.Errorf("ActionNone should not be queued, got %v", f.Actions)
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Hold(KeyRight)
	f.Push(ActionShoot)

	clone := f.Clone()
	f.Clear()

	if f.IsHeld(KeyRight) || f.Has(ActionShoot) {
		t.Error("Clear should drop held keys and actions")
	}
	if !clone.IsHeld(KeyRight) || !clone.Has(ActionShoot) {
		t.Error("clone should be independent of the original")
	}
}
