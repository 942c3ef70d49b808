package sim

import "testing"

func TestContextStore_SaveRestore_Roundtrip(t *testing.T) {
	// GIVEN an empty store
	cs := &ContextStore{}

	// WHEN a context is saved and restored
	cs.Save(12, 7)
	if !cs.HasSaved() {
		t.Fatal("HasSaved after Save: got false, want true")
	}
	ctx := cs.Restore()

	// THEN the restored context carries the saved fields, tagged restored
	if ctx.PC != 7 {
		t.Errorf("restored PC: got %d, want 7", ctx.PC)
	}
	if ctx.SavedAtTick != 12 {
		t.Errorf("restored SavedAtTick: got %d, want 12", ctx.SavedAtTick)
	}
	if ctx.Status != ContextRestored {
		t.Errorf("restored Status: got %q, want %q", ctx.Status, ContextRestored)
	}
	// AND the slot is cleared
	if cs.HasSaved() {
		t.Error("slot still occupied after Restore")
	}
}

func TestContextStore_DoubleSave_Panics(t *testing.T) {
	// GIVEN a store with an outstanding context
	cs := &ContextStore{}
	cs.Save(1, 0)

	// WHEN a second Save is attempted without an intervening Restore
	defer func() {
		// THEN it panics: nesting contexts is a scheduler bug
		if recover() == nil {
			t.Error("second Save did not panic")
		}
	}()
	cs.Save(2, 1)
}

func TestContextStore_RestoreEmpty_Panics(t *testing.T) {
	// GIVEN an empty store
	cs := &ContextStore{}

	// WHEN Restore is called
	defer func() {
		// THEN it panics: restoring nothing is a scheduler bug
		if recover() == nil {
			t.Error("Restore on empty store did not panic")
		}
	}()
	cs.Restore()
}

func TestContextStore_SaveAfterRestore_Allowed(t *testing.T) {
	// GIVEN a store that completed one save/restore cycle
	cs := &ContextStore{}
	cs.Save(1, 10)
	cs.Restore()

	// WHEN a new context is saved
	cs.Save(5, 20)

	// THEN the new context is stored normally
	ctx := cs.Restore()
	if ctx.PC != 20 || ctx.SavedAtTick != 5 {
		t.Errorf("second cycle context: got %+v, want PC=20 SavedAtTick=5", ctx)
	}
}
