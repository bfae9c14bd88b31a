package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSync records calls and serves a fixed view.
type fakeSync struct {
	view  usecase.SyncView
	calls []string

	draft     entity.Draft
	createErr error
	attached  *entity.Session
}

func (f *fakeSync) Restore(context.Context) error {
	f.calls = append(f.calls, "restore")

	return nil
}

func (f *fakeSync) Attach(_ context.Context, session *entity.Session) error {
	f.calls = append(f.calls, "attach")
	f.attached = session

	return nil
}

func (f *fakeSync) SignIn(context.Context) error {
	f.calls = append(f.calls, "signin")

	return nil
}

func (f *fakeSync) Refresh(context.Context) error {
	f.calls = append(f.calls, "refresh")

	return nil
}

func (f *fakeSync) SetDraft(content string, fragmentType entity.FragmentType) {
	f.calls = append(f.calls, "setdraft")
	f.draft = entity.Draft{Content: content, Type: fragmentType}
}

func (f *fakeSync) Create(context.Context) (*entity.Fragment, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return nil, f.createErr
	}

	return &entity.Fragment{ID: "abc123", Type: f.draft.Type}, nil
}

func (f *fakeSync) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)

	return nil
}

func (f *fakeSync) Expand(_ context.Context, id string) (*entity.Fragment, error) {
	f.calls = append(f.calls, "expand:"+id)

	return &entity.Fragment{ID: id}, nil
}

func (f *fakeSync) Collapse() {
	f.calls = append(f.calls, "collapse")
}

func (f *fakeSync) SignOut(context.Context) error {
	f.calls = append(f.calls, "signout")

	return nil
}

func (f *fakeSync) View() usecase.SyncView {
	return f.view
}

type fakeWaiter struct {
	session *entity.Session
	err     error
}

func (w fakeWaiter) Wait(context.Context) (*entity.Session, error) {
	return w.session, w.err
}

func readyView(ids ...string) usecase.SyncView {
	fragments := make([]entity.Fragment, len(ids))
	for i, id := range ids {
		fragments[i] = entity.Fragment{ID: id, Type: entity.FragmentTypeText, Size: 3}
	}

	return usecase.SyncView{
		State:     usecase.StateReady,
		User:      &entity.Identity{Username: "alice"},
		Fragments: fragments,
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msg without running the returned command.
func press(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)

	return next.(Model)
}

// step feeds msg and then runs the returned command once, feeding its message back.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}

	out := cmd()
	switch out.(type) {
	case doneMsg, signInStartedMsg, signInMsg:
		return step(t, m, out)
	}

	return m
}

// ready returns a model that has finished restoring.
func ready(t *testing.T, sync *fakeSync, waiter signInWaiter) Model {
	t.Helper()

	m := NewModel(context.Background(), sync, waiter)
	msg := m.Init()()
	next, _ := m.Update(msg)

	return next.(Model)
}

func TestModel_InitRestores(t *testing.T) {
	sync := &fakeSync{}
	m := ready(t, sync, nil)

	assert.Equal(t, []string{"restore"}, sync.calls)
	assert.False(t, m.busy)
	assert.Contains(t, m.View(), "Sign in to see your fragments")
}

func TestModel_ActionsDisabledWhileLoading(t *testing.T) {
	sync := &fakeSync{view: readyView("a")}
	m := ready(t, sync, nil)
	sync.calls = nil
	sync.view.State = usecase.StateLoading

	for _, k := range []string{"r", "d", "n", "o"} {
		next, cmd := m.Update(runes(k))
		m = next.(Model)
		assert.Nil(t, cmd, k)
	}

	assert.Empty(t, sync.calls)
	assert.Equal(t, "busy, please wait", m.status)
	assert.False(t, m.editing)
}

func TestModel_ActionsDisabledWhileBusy(t *testing.T) {
	sync := &fakeSync{view: readyView("a")}
	m := ready(t, sync, nil)
	sync.calls = nil

	next, cmd := m.Update(runes("r"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	// A second refresh is refused until the first one reports back.
	_, cmd = m.Update(runes("r"))
	assert.Nil(t, cmd)
}

func TestModel_CreateFromEditor(t *testing.T) {
	sync := &fakeSync{view: readyView()}
	m := ready(t, sync, nil)
	sync.calls = nil

	m = press(m, runes("n"))
	require.True(t, m.editing)

	m = press(m, runes("hi"))
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, m.editing)
	assert.False(t, m.busy)
	assert.Equal(t, []string{"setdraft", "create"}, sync.calls)
	assert.Equal(t, entity.Draft{Content: "hi", Type: entity.FragmentTypeMarkdown}, sync.draft)
	assert.Equal(t, "created abc123: done", m.status)
}

func TestModel_CreateFailureShowsReason(t *testing.T) {
	sync := &fakeSync{
		view:      readyView(),
		createErr: domainerrors.NewRemoteRejected(500, "Internal Server Error", ""),
	}
	m := ready(t, sync, nil)

	m = press(m, runes("n"))
	m = press(m, runes("x"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, "create: 500 Internal Server Error", m.status)
}

func TestModel_EditorCancelKeepsDraft(t *testing.T) {
	sync := &fakeSync{view: readyView()}
	m := ready(t, sync, nil)
	sync.calls = nil

	m = press(m, runes("n"))
	m = press(m, runes("later"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.editing)
	assert.Equal(t, []string{"setdraft"}, sync.calls)
	assert.Equal(t, "later", sync.draft.Content)
}

func TestModel_DeleteSelected(t *testing.T) {
	sync := &fakeSync{view: readyView("a", "b")}
	m := ready(t, sync, nil)
	sync.calls = nil

	m = step(t, m, runes("j"))
	m = step(t, m, runes("d"))

	assert.Equal(t, []string{"delete:b"}, sync.calls)
	assert.Equal(t, "delete b: done", m.status)
}

func TestModel_CursorStaysInRange(t *testing.T) {
	sync := &fakeSync{view: readyView("a", "b")}
	m := ready(t, sync, nil)

	for range 5 {
		m = step(t, m, runes("j"))
	}
	assert.Equal(t, 1, m.cursor)

	sync.view = readyView("a")
	m = step(t, m, doneMsg{action: "refresh"})
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ExpandToggles(t *testing.T) {
	sync := &fakeSync{view: readyView("a")}
	m := ready(t, sync, nil)
	sync.calls = nil

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	sync.view.Detail = &entity.Fragment{ID: "a", Type: entity.FragmentTypeText, Content: []byte("body\nmore")}
	assert.Contains(t, m.View(), "more")
	assert.Contains(t, m.View(), "body …")

	step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"expand:a", "collapse"}, sync.calls)
}

func TestModel_SignInFlow(t *testing.T) {
	session := entity.NewSession(entity.Identity{Username: "alice"}, entity.Credential{Token: "t"})
	sync := &fakeSync{}
	m := ready(t, sync, fakeWaiter{session: session})
	sync.calls = nil

	m = step(t, m, runes("l"))

	assert.Equal(t, []string{"signin", "attach"}, sync.calls)
	assert.Same(t, session, sync.attached)
	assert.False(t, m.busy)
	assert.False(t, m.waiting)
}

func TestModel_SignInPromptShownInsideUI(t *testing.T) {
	sync := &fakeSync{}
	m := ready(t, sync, fakeWaiter{err: errors.New("access_denied")})

	var sent []tea.Msg
	prompt := NewPrompt()
	prompt.Attach(func(msg tea.Msg) { sent = append(sent, msg) })

	m = press(m, runes("l"))
	_, _ = fmt.Fprintf(prompt, "Open this URL to sign in:\n\n  %s\n\n", "http://idp.test/authorize?state=s1")
	_, _ = fmt.Fprint(prompt, "▀▄▀\n")
	for _, msg := range sent {
		m = press(m, msg)
	}
	m = press(m, signInStartedMsg{})

	view := m.View()
	assert.True(t, m.waiting)
	assert.Contains(t, view, "http://idp.test/authorize?state=s1")
	assert.Contains(t, view, "▀▄▀")

	m = press(m, signInMsg{err: errors.New("access_denied")})

	assert.NotContains(t, m.View(), "http://idp.test/authorize")
}

func TestModel_SignInFailure(t *testing.T) {
	sync := &fakeSync{}
	m := ready(t, sync, fakeWaiter{err: errors.New("access_denied")})
	sync.calls = nil

	m = step(t, m, runes("l"))

	assert.Equal(t, []string{"signin"}, sync.calls)
	assert.Equal(t, "sign in: access_denied", m.status)
}

func TestModel_SignInUnavailableWithoutListener(t *testing.T) {
	sync := &fakeSync{}
	m := ready(t, sync, nil)
	sync.calls = nil

	m = step(t, m, runes("l"))

	assert.Empty(t, sync.calls)
	assert.Contains(t, m.status, "fragments login")
}

func TestModel_StaleResultIsReported(t *testing.T) {
	m := ready(t, &fakeSync{}, nil)

	m = step(t, m, doneMsg{action: "refresh", err: usecase.ErrSessionChanged})

	assert.Equal(t, "refresh: discarded, session changed", m.status)
}

func TestModel_ViewShowsDiagnosticAndEmptyState(t *testing.T) {
	sync := &fakeSync{view: readyView()}
	sync.view.Diagnostic = domainerrors.NewRemoteRejected(404, "Not Found", "")
	m := ready(t, sync, nil)

	out := m.View()

	assert.Contains(t, out, "No fragments yet")
	assert.Contains(t, out, "404 Not Found")
	assert.Contains(t, out, "alice")
}
