package motion

import (
	"math"
	"testing"
)

func rampSeq(to, duration float64) *Sequence[float64] {
	return NewSequence(0.0, LerpFloat64).RampTo(to, duration)
}

func TestMotionStepAdditivity(t *testing.T) {
	a := NewOutput(0.0)
	b := NewOutput(0.0)
	seq := rampSeq(10, 2)
	split := NewMotion(a, seq)
	whole := NewMotion(b, seq)

	split.Step(0.3)
	split.Step(0.7)
	whole.Step(1.0)
	if math.Abs(split.Time()-whole.Time()) > 1e-12 {
		t.Errorf("split time %v, whole time %v", split.Time(), whole.Time())
	}
	if math.Abs(a.Value()-b.Value()) > 1e-12 {
		t.Errorf("split value %v, whole value %v", a.Value(), b.Value())
	}
}

func TestOutputCloseDisconnectsMotion(t *testing.T) {
	tl := NewTimeline()
	out := NewOutput(0.0)
	m := Apply(tl, out, rampSeq(5, 1))
	if !out.IsConnected() || !m.IsConnected() {
		t.Fatal("binding should connect both sides")
	}

	out.Close()
	if m.IsConnected() {
		t.Error("motion still reports a connection to a destroyed slot")
	}
	if out.IsConnected() {
		t.Error("closed slot still reports a connection")
	}

	// stepping after the slot is gone must not write anywhere, and the
	// timeline reaps the orphaned motion
	tl.Step(0.5)
	if !tl.Empty() {
		t.Errorf("timeline owns %d motions, want 0 after reap", tl.Size())
	}
}

func TestMotionDisconnectClearsSlot(t *testing.T) {
	out := NewOutput(0.0)
	m := NewMotion(out, rampSeq(5, 1))
	m.Disconnect()
	if out.IsConnected() {
		t.Error("slot back-link survived motion disconnect")
	}
	if m.IsConnected() {
		t.Error("motion reports connected after disconnect")
	}
}

func TestOutputMovePreservesConnection(t *testing.T) {
	a := NewOutput(1.0)
	b := NewOutput(0.0)
	m := NewMotion(a, rampSeq(10, 2))

	b.MoveFrom(a)
	if a.IsConnected() {
		t.Error("moved-from slot still connected")
	}
	if !b.IsConnected() {
		t.Fatal("moved-to slot lost the connection")
	}

	m.SkipTo(1)
	if b.Value() != 5.0 {
		t.Errorf("moved-to slot = %v, want 5", b.Value())
	}
	if a.Value() != 0.0 {
		t.Errorf("moved-from shell = %v, want zero and never written", a.Value())
	}

	m.SkipTo(2)
	if b.Value() != 10.0 {
		t.Errorf("moved-to slot = %v, want 10", b.Value())
	}
}

func TestOutputCopyNeverTransfersConnection(t *testing.T) {
	a := NewOutput(1.0)
	b := NewOutput(0.0)
	m := NewMotion(a, rampSeq(10, 2))

	b.CopyFrom(a)
	if b.IsConnected() {
		t.Error("copy took over the live connection")
	}
	if !a.IsConnected() {
		t.Error("copy severed the source's connection")
	}
	if b.Value() != 1.0 {
		t.Errorf("copy value = %v, want 1", b.Value())
	}

	m.SkipTo(1)
	if a.Value() != 5.0 {
		t.Errorf("source slot = %v, want 5", a.Value())
	}
	if b.Value() != 1.0 {
		t.Errorf("copy changed to %v after a step it should not observe", b.Value())
	}
}

func TestMotionMoveRepointsSlot(t *testing.T) {
	out := NewOutput(0.0)
	src := NewMotion(out, rampSeq(10, 2))
	src.Step(0.5)

	var dst Motion[float64]
	dst.MoveFrom(src)
	if src.IsConnected() {
		t.Error("moved-from motion still connected")
	}
	if !dst.IsConnected() {
		t.Fatal("moved-to motion lost the target")
	}
	if out.Driver() != &dst {
		t.Error("slot back-link was not repointed to the moved-to motion")
	}
	if dst.Time() != 0.5 {
		t.Errorf("clock state did not move across, time = %v", dst.Time())
	}

	dst.SkipTo(1)
	if out.Value() != 5.0 {
		t.Errorf("slot = %v, want 5 written by the moved-to motion", out.Value())
	}
}

func TestReconnectSeversOldMotion(t *testing.T) {
	out := NewOutput(0.0)
	old := NewMotion(out, rampSeq(5, 1))
	repl := NewMotion(out, rampSeq(7, 1))

	if old.IsConnected() {
		t.Error("old motion still connected after rebinding the slot")
	}
	if out.Driver() != repl {
		t.Fatal("slot is not driven by the new motion")
	}

	old.Step(1)
	if out.Value() != 0.0 {
		t.Errorf("severed motion wrote %v through a dead link", out.Value())
	}
	repl.Step(1)
	if out.Value() != 7.0 {
		t.Errorf("slot = %v, want 7", out.Value())
	}
}

func TestMovedOutputCollection(t *testing.T) {
	tl := NewTimeline()
	seq := rampSeq(5, 1)
	outputs := make([]Output[float64], 500)
	for i := range outputs {
		Apply(tl, &outputs[i], seq)
	}

	moved := make([]Output[float64], len(outputs))
	for i := range moved {
		moved[i].MoveFrom(&outputs[i])
	}

	tl.Step(1.0)
	for i := range moved {
		if moved[i].Value() != 5.0 {
			t.Fatalf("moved[%d] = %v, want 5", i, moved[i].Value())
		}
	}
	for i := range outputs {
		if outputs[i].IsConnected() || outputs[i].Value() != 0 {
			t.Fatalf("outputs[%d] should be a disconnected shell", i)
		}
	}
	if tl.Size() != len(moved) {
		t.Errorf("timeline owns %d motions, want %d", tl.Size(), len(moved))
	}
}

func TestCopiedOutputCollection(t *testing.T) {
	tl := NewTimeline()
	seq := rampSeq(5, 1)
	outputs := make([]Output[float64], 500)
	for i := range outputs {
		Apply(tl, &outputs[i], seq)
	}

	copies := make([]Output[float64], len(outputs))
	for i := range copies {
		copies[i].CopyFrom(&outputs[i])
	}

	tl.Step(1.0)
	for i := range outputs {
		if outputs[i].Value() != 5.0 {
			t.Fatalf("outputs[%d] = %v, want 5", i, outputs[i].Value())
		}
	}
	for i := range copies {
		if copies[i].IsConnected() || copies[i].Value() != 0 {
			t.Fatalf("copies[%d] must stay disconnected and unwritten", i)
		}
	}
}
