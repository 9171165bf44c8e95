package gen

import "testing"

func TestDedupGuardTryInsert(t *testing.T) {
	d := NewDedupGuard(8)

	if !d.TryInsert(1, 2) {
		t.Error("first insert of (1,2) should succeed")
	}
	if d.TryInsert(1, 2) {
		t.Error("second insert of (1,2) should fail")
	}
	// Ordered pairs: the reverse direction is a different edge.
	if !d.TryInsert(2, 1) {
		t.Error("insert of (2,1) should succeed")
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestDedupGuardSizeHints(t *testing.T) {
	// Negative and oversized hints must not panic or over-allocate.
	for _, hint := range []int64{-1, 0, 1, dedupSizeHintCap + 1} {
		d := NewDedupGuard(hint)
		if !d.TryInsert(0, 1) {
			t.Errorf("hint %d: insert should succeed", hint)
		}
	}
}
