// Package form drives create/edit/delete of a single record: it holds the
// draft, serialises submissions and refreshes the owning list afterwards.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"admin-dashboard/internal/apiclient"
	"admin-dashboard/internal/logging"
)

var (
	// ErrSubmitting is returned while a previous submission is in flight.
	ErrSubmitting = errors.New("form: submission already in progress")
	// ErrNoPendingDelete is returned by ConfirmDelete without RequestDelete.
	ErrNoPendingDelete = errors.New("form: no delete awaiting confirmation")
	// ErrUnknownField is returned when binding a field the schema lacks.
	ErrUnknownField = errors.New("form: unknown field")
)

// Mutator is the write side of a resource.
type Mutator[T, P any] interface {
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id int, payload P) (T, error)
	Delete(ctx context.Context, id int) error
}

// List is the list the form refreshes on success and reports failures to.
type List interface {
	Reload(ctx context.Context)
	Fail(message string)
}

// Message picks the text surfaced for a failed operation.
type Message struct {
	Fallback string
	// UseServer prefers the server-supplied message when present.
	UseServer bool
}

func (m Message) For(err error) string {
	if m.UseServer {
		return apiclient.Message(err, m.Fallback)
	}
	return m.Fallback
}

// Messages holds the failure texts of the three operations.
type Messages struct {
	Create Message
	Update Message
	Delete Message
}

// Controller is the form of one section.
type Controller[T, P any] struct {
	schema   Schema[T, P]
	mutator  Mutator[T, P]
	list     List
	messages Messages
	logger   *slog.Logger

	mu            sync.Mutex
	mode          Mode
	target        int
	draft         Values
	submitting    bool
	pendingDelete *int
}

// New creates a form in create mode with a default draft.
func New[T, P any](schema Schema[T, P], mutator Mutator[T, P], list List, messages Messages, logger *slog.Logger) *Controller[T, P] {
	return &Controller[T, P]{
		schema:   schema,
		mutator:  mutator,
		list:     list,
		messages: messages,
		logger:   logging.OrNop(logger),
		mode:     ModeCreate,
		draft:    schema.defaults(),
	}
}

// Schema returns the form schema.
func (f *Controller[T, P]) Schema() Schema[T, P] { return f.schema }

// Mode returns the current mode and, in edit mode, the target id.
func (f *Controller[T, P]) Mode() (Mode, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode, f.target
}

// Fields returns the fields shown in the current mode.
func (f *Controller[T, P]) Fields() []Field {
	mode, _ := f.Mode()
	return f.schema.Visible(mode)
}

// Values returns a copy of the draft.
func (f *Controller[T, P]) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.clone()
}

// Get returns the draft value of name.
func (f *Controller[T, P]) Get(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft[name]
}

// Set binds value to name. No validation happens here.
func (f *Controller[T, P]) Set(name, value string) error {
	if _, ok := f.schema.field(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft[name] = value
	return nil
}

// Edit switches to edit mode seeded with record's current values.
func (f *Controller[T, P]) Edit(record T) {
	id, values := f.schema.Record(record)
	draft := f.schema.defaults()
	for k, v := range values {
		draft[k] = v
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = ModeEdit
	f.target = id
	f.draft = draft
}

// Reset leaves edit mode and clears the draft.
func (f *Controller[T, P]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Controller[T, P]) reset() {
	f.mode = ModeCreate
	f.target = 0
	f.draft = f.schema.defaults()
}

// Submitting reports whether a submission is in flight; the submit
// control is disabled meanwhile.
func (f *Controller[T, P]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit sends the draft: create in create mode, update of the target in
// edit mode. On success the draft is cleared, edit mode ends and the list
// is refreshed. On failure the message goes to the list and the draft is
// kept for a retry.
func (f *Controller[T, P]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	f.submitting = true
	mode, target, draft := f.mode, f.target, f.draft.clone()
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	msg := f.messages.Create
	if mode == ModeEdit {
		msg = f.messages.Update
	}

	payload, err := f.schema.Build(mode, draft)
	if err != nil {
		f.list.Fail(msg.Fallback)
		return fmt.Errorf("Submit: %w", err)
	}

	if mode == ModeEdit {
		_, err = f.mutator.Update(ctx, target, payload)
	} else {
		_, err = f.mutator.Create(ctx, payload)
	}
	if err != nil {
		f.logger.Debug("submit failed", "mode", mode.String(), "target", target, "error", err)
		f.list.Fail(msg.For(err))
		return fmt.Errorf("Submit: %w", err)
	}

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()

	f.list.Reload(ctx)
	return nil
}

// RequestDelete stages the deletion of id. Nothing is sent until
// ConfirmDelete.
func (f *Controller[T, P]) RequestDelete(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingDelete = &id
}

// PendingDelete returns the id awaiting confirmation.
func (f *Controller[T, P]) PendingDelete() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pendingDelete == nil {
		return 0, false
	}
	return *f.pendingDelete, true
}

// CancelDelete drops the staged deletion.
func (f *Controller[T, P]) CancelDelete() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingDelete = nil
}

// ConfirmDelete sends the staged deletion and refreshes the list. On
// failure the message is surfaced and the snapshot is left alone.
func (f *Controller[T, P]) ConfirmDelete(ctx context.Context) error {
	f.mu.Lock()
	if f.pendingDelete == nil {
		f.mu.Unlock()
		return ErrNoPendingDelete
	}
	id := *f.pendingDelete
	f.pendingDelete = nil
	f.mu.Unlock()

	if err := f.mutator.Delete(ctx, id); err != nil {
		f.logger.Debug("delete failed", "id", id, "error", err)
		f.list.Fail(f.messages.Delete.For(err))
		return fmt.Errorf("Delete: %w", err)
	}
	f.list.Reload(ctx)
	return nil
}
