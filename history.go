package easel

import "log/slog"

// Command is a reversible unit of document mutation. Commands capture the
// layer IDs and old/new values they need up front, so Execute and Undo can
// be replayed any number of times without drifting.
//
// Both methods are total: a command whose target layer has disappeared
// does nothing.
type Command interface {
	// Description is a short human-readable label ("Set opacity",
	// "Remove layer") shown in undo menus and history panels.
	Description() string

	// Execute applies the mutation. Must be idempotent: Redo re-invokes it.
	Execute()

	// Undo reverts the mutation exactly.
	Undo()
}

// History is the ordered log of executed commands with an undo cursor.
// Every document mutation flows through it, which is what makes the whole
// document reversible. pos counts the commands currently applied:
// recs[pos-1] is what Undo reverts, recs[pos] is what Redo reapplies.
//
// The zero value is an empty history. A History belongs to a single
// Document and never spans two documents.
type History struct {
	recs []Command
	pos  int
}

// Execute runs cmd, prunes any redo tail past the cursor, and appends cmd
// as the new head. Once a new command is executed after an undo, the
// discarded redo branch is permanently lost.
func (h *History) Execute(cmd Command) {
	cmd.Execute()

	// recs will be [applied..., cmd] after this
	h.recs = h.recs[:h.pos]
	h.recs = append(h.recs, cmd)
	h.pos++

	Logger().Debug("command executed",
		slog.String("description", cmd.Description()),
		slog.Int("pos", h.pos))
}

// CanUndo reports whether there is a command to undo.
func (h *History) CanUndo() bool {
	return h.pos > 0
}

// CanRedo reports whether there is an undone command to reapply.
func (h *History) CanRedo() bool {
	return h.pos < len(h.recs)
}

// Undo reverts the command at the cursor and moves the cursor back.
// Returns false when there is nothing to undo.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.pos--
	cmd := h.recs[h.pos]
	cmd.Undo()

	Logger().Debug("command undone",
		slog.String("description", cmd.Description()),
		slog.Int("pos", h.pos))
	return true
}

// Redo reapplies the command after the cursor and advances the cursor.
// Returns false when there is nothing to redo.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	cmd := h.recs[h.pos]
	cmd.Execute()
	h.pos++

	Logger().Debug("command redone",
		slog.String("description", cmd.Description()),
		slog.Int("pos", h.pos))
	return true
}

// Clear drops all history. Called when a document is loaded or created;
// undo never crosses a document boundary.
func (h *History) Clear() {
	h.recs = nil
	h.pos = 0
}

// Len returns the number of commands currently held, applied or undone.
func (h *History) Len() int {
	return len(h.recs)
}

// Descriptions returns the labels of all held commands in execution
// order, for history panel UIs.
func (h *History) Descriptions() []string {
	out := make([]string, len(h.recs))
	for i, c := range h.recs {
		out[i] = c.Description()
	}
	return out
}
