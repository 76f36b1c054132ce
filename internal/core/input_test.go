package core

import "testing"

func TestHeldKeysPressRelease(t *testing.T) {
	var h HeldKeys

	h.Press(ActionLeft)
	h.Press(ActionJump)
	h.Press(ActionLeft) // already held, order unchanged

	if len(h) != 2 || h[0] != ActionLeft || h[1] != ActionJump {
		t.Fatalf("HeldKeys = %v, expected [Left Jump]", h)
	}

	h.Press(ActionRight)
	h.Release(ActionJump)

	if len(h) != 2 || h[0] != ActionLeft || h[1] != ActionRight {
		t.Fatalf("after release HeldKeys = %v, expected [Left Right]", h)
	}
	if h.Has(ActionJump) {
		t.Error("released key should not be held")
	}

	// Releasing a key that is not held is a no-op
	h.Release(ActionPause)
	if len(h) != 2 {
		t.Errorf("Release of unheld key changed the set: %v", h)
	}
}

func TestHeldKeysClone(t *testing.T) {
	h := HeldKeys{ActionJump}
	c := h.Clone()
	c.Press(ActionLeft)

	if h.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
	if HeldKeys(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set action should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
	if !ActionLeft.IsMovement() || ActionPause.IsMovement() {
		t.Error("IsMovement classification is wrong")
	}
}
