package sim

import "fmt"

// ContextStatus tags a SavedContext's position in its lifecycle.
type ContextStatus string

const (
	// ContextSaved marks a context sitting in the store, awaiting restore.
	ContextSaved ContextStatus = "saved"
	// ContextRestored marks a context returned by Restore.
	ContextRestored ContextStatus = "restored"
)

// SavedContext is the suspended main-process state captured when an interrupt
// begins service: the simulated program counter at the moment of
// interruption, the tick it was saved at, and the lifecycle status. It is a
// fixed-shape record; there are no open-ended fields.
type SavedContext struct {
	PC          int64
	SavedAtTick int64
	Status      ContextStatus
}

// ContextStore holds at most one saved execution context. The modeled
// processor does not nest interrupt handling, so the slot is a single
// nilable field and the single-outstanding-context invariant is enforced by
// the type itself.
//
// Save and Restore panic on misuse (double save, restore when empty). Both
// conditions indicate a scheduler transition bug, not a runtime error the
// caller could recover from.
type ContextStore struct {
	slot *SavedContext
}

// Save stores the main-process context at the start of interrupt service.
// Panics if a context is already outstanding.
func (cs *ContextStore) Save(tick, pc int64) {
	if cs.slot != nil {
		panic(fmt.Sprintf("ContextStore.Save: context already saved at tick %d (save at tick %d would nest)",
			cs.slot.SavedAtTick, tick))
	}
	cs.slot = &SavedContext{PC: pc, SavedAtTick: tick, Status: ContextSaved}
}

// Restore returns the stored context tagged restored and clears the slot.
// Panics if no context is stored.
func (cs *ContextStore) Restore() SavedContext {
	if cs.slot == nil {
		panic("ContextStore.Restore: no context saved")
	}
	ctx := *cs.slot
	ctx.Status = ContextRestored
	cs.slot = nil
	return ctx
}

// HasSaved reports whether a context is currently outstanding.
func (cs *ContextStore) HasSaved() bool {
	return cs.slot != nil
}
