package form

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"admin-dashboard/internal/apiclient"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
	Qty  int
}

type payload struct {
	Name   string
	Qty    int
	Secret string
}

var testSchema = Schema[item, payload]{
	Fields: []Field{
		{Name: "name", Label: "Nombre"},
		{Name: "qty", Label: "Cantidad", Default: "1"},
		{Name: "secret", Label: "Clave", Secret: true, CreateOnly: true},
	},
	Record: func(it item) (int, Values) {
		return it.ID, Values{"name": it.Name, "qty": strconv.Itoa(it.Qty)}
	},
	Build: func(mode Mode, v Values) (payload, error) {
		qty, err := strconv.Atoi(v.Trimmed("qty"))
		if err != nil {
			return payload{}, err
		}
		p := payload{Name: v["name"], Qty: qty}
		if mode == ModeCreate {
			p.Secret = v["secret"]
		}
		return p, nil
	},
}

type call struct {
	op      string
	id      int
	payload payload
}

type fakeMutator struct {
	calls []call
	err   error
	block chan struct{}
}

func (m *fakeMutator) Create(ctx context.Context, p payload) (item, error) {
	if m.block != nil {
		<-m.block
	}
	m.calls = append(m.calls, call{op: "create", payload: p})
	return item{ID: 99, Name: p.Name}, m.err
}

func (m *fakeMutator) Update(ctx context.Context, id int, p payload) (item, error) {
	m.calls = append(m.calls, call{op: "update", id: id, payload: p})
	return item{ID: id}, m.err
}

func (m *fakeMutator) Delete(ctx context.Context, id int) error {
	m.calls = append(m.calls, call{op: "delete", id: id})
	return m.err
}

type fakeList struct {
	reloads  int
	failures []string
}

func (l *fakeList) Reload(ctx context.Context) { l.reloads++ }
func (l *fakeList) Fail(message string)        { l.failures = append(l.failures, message) }

var testMessages = Messages{
	Create: Message{Fallback: "No se pudo crear", UseServer: true},
	Update: Message{Fallback: "No se pudo editar"},
	Delete: Message{Fallback: "No se pudo eliminar", UseServer: true},
}

func newForm() (*Controller[item, payload], *fakeMutator, *fakeList) {
	m := &fakeMutator{}
	l := &fakeList{}
	return New(testSchema, m, l, testMessages, nil), m, l
}

func TestCreateSubmit(t *testing.T) {
	f, m, l := newForm()
	require.Equal(t, "1", f.Get("qty"))
	require.NoError(t, f.Set("name", "Widget"))
	require.NoError(t, f.Set("qty", "5"))
	require.NoError(t, f.Set("secret", "s3cret"))

	require.NoError(t, f.Submit(context.Background()))
	require.Equal(t, []call{{op: "create", payload: payload{Name: "Widget", Qty: 5, Secret: "s3cret"}}}, m.calls)
	require.Equal(t, 1, l.reloads)
	require.Empty(t, l.failures)
	require.Equal(t, Values{"name": "", "qty": "1", "secret": ""}, f.Values())
	require.False(t, f.Submitting())
}

func TestEditSubmit(t *testing.T) {
	f, m, l := newForm()
	f.Edit(item{ID: 7, Name: "Old", Qty: 3})
	mode, target := f.Mode()
	require.Equal(t, ModeEdit, mode)
	require.Equal(t, 7, target)
	require.Equal(t, "Old", f.Get("name"))
	require.Len(t, f.Fields(), 2)

	require.NoError(t, f.Set("name", "New"))
	require.NoError(t, f.Submit(context.Background()))
	require.Equal(t, []call{{op: "update", id: 7, payload: payload{Name: "New", Qty: 3}}}, m.calls)
	require.Equal(t, 1, l.reloads)

	mode, target = f.Mode()
	require.Equal(t, ModeCreate, mode)
	require.Zero(t, target)
	require.Len(t, f.Fields(), 3)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	t.Run("server message", func(t *testing.T) {
		f, m, l := newForm()
		m.err = &apiclient.HTTPError{StatusCode: 400, Message: "el email ya existe"}
		require.NoError(t, f.Set("name", "Ana"))

		err := f.Submit(context.Background())
		require.Error(t, err)
		require.True(t, apiclient.IsValidation(err))
		require.Equal(t, []string{"el email ya existe"}, l.failures)
		require.Zero(t, l.reloads)
		require.Equal(t, "Ana", f.Get("name"))
	})

	t.Run("fixed message", func(t *testing.T) {
		f, m, l := newForm()
		f.Edit(item{ID: 3, Name: "x", Qty: 1})
		m.err = &apiclient.HTTPError{StatusCode: 500, Message: "internal"}

		require.Error(t, f.Submit(context.Background()))
		require.Equal(t, []string{"No se pudo editar"}, l.failures)
		mode, target := f.Mode()
		require.Equal(t, ModeEdit, mode)
		require.Equal(t, 3, target)
	})

	t.Run("build error sends nothing", func(t *testing.T) {
		f, m, l := newForm()
		require.NoError(t, f.Set("qty", "many"))
		require.Error(t, f.Submit(context.Background()))
		require.Empty(t, m.calls)
		require.Equal(t, []string{"No se pudo crear"}, l.failures)
		require.Equal(t, "many", f.Get("qty"))
	})
}

func TestSubmitIsSerialised(t *testing.T) {
	f, m, l := newForm()
	m.block = make(chan struct{})
	done := make(chan error)
	go func() { done <- f.Submit(context.Background()) }()

	require.Eventually(t, f.Submitting, time.Second, time.Millisecond)
	require.ErrorIs(t, f.Submit(context.Background()), ErrSubmitting)

	close(m.block)
	require.NoError(t, <-done)
	require.Len(t, m.calls, 1)
	require.Equal(t, 1, l.reloads)
}

func TestSetUnknownField(t *testing.T) {
	f, _, _ := newForm()
	require.ErrorIs(t, f.Set("nope", "x"), ErrUnknownField)
}

func TestResetLeavesEditMode(t *testing.T) {
	f, _, _ := newForm()
	f.Edit(item{ID: 1, Name: "a", Qty: 2})
	f.Reset()
	mode, _ := f.Mode()
	require.Equal(t, ModeCreate, mode)
	require.Equal(t, "", f.Get("name"))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		f, m, l := newForm()
		f.RequestDelete(4)
		id, ok := f.PendingDelete()
		require.True(t, ok)
		require.Equal(t, 4, id)
		f.CancelDelete()
		require.ErrorIs(t, f.ConfirmDelete(context.Background()), ErrNoPendingDelete)
		require.Empty(t, m.calls)
		require.Zero(t, l.reloads)
	})

	t.Run("with confirmation", func(t *testing.T) {
		f, m, l := newForm()
		f.RequestDelete(4)
		require.NoError(t, f.ConfirmDelete(context.Background()))
		require.Equal(t, []call{{op: "delete", id: 4}}, m.calls)
		require.Equal(t, 1, l.reloads)
		_, ok := f.PendingDelete()
		require.False(t, ok)
		require.ErrorIs(t, f.ConfirmDelete(context.Background()), ErrNoPendingDelete)
		require.Len(t, m.calls, 1)
	})

	t.Run("failure", func(t *testing.T) {
		f, m, l := newForm()
		m.err = errors.New("boom")
		f.RequestDelete(4)
		require.Error(t, f.ConfirmDelete(context.Background()))
		require.Equal(t, []string{"No se pudo eliminar"}, l.failures)
		require.Zero(t, l.reloads)
	})
}
