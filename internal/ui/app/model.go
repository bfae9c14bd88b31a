// Package app is the terminal UI over the fragment sync controller.
package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"fragments/internal/domain/entity"
	"fragments/internal/ui/theme"
	"fragments/internal/usecase"
	"fragments/internal/util"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

const previewWidth = 40

// signInWaiter delivers the session produced by the browser sign-in.
type signInWaiter interface {
	Wait(ctx context.Context) (*entity.Session, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

// doneMsg reports the end of a controller call. The view itself is read back from the
// controller on render.
type doneMsg struct {
	action string
	err    error
}

type signInStartedMsg struct{ err error }

type signInMsg struct {
	session *entity.Session
	err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. All state about fragments lives in the controller;
// the model only keeps cursor, editor and status line.
type Model struct {
	ctx    context.Context
	sync   usecase.SyncUsecase
	signIn signInWaiter

	keys    keyMap
	help    help.Model
	editor  textarea.Model
	editing bool
	typeIdx int

	cursor  int
	busy    bool
	waiting bool
	prompt  string // sign-in instructions shown while waiting
	status  string
	width   int
}

// NewModel creates the UI. signIn may be nil, which disables interactive sign-in.
func NewModel(ctx context.Context, sync usecase.SyncUsecase, signIn signInWaiter) Model {
	editor := textarea.New()
	editor.Placeholder = "Fragment content"
	editor.ShowLineNumbers = false
	editor.SetHeight(6)

	return Model{
		ctx:    ctx,
		sync:   sync,
		signIn: signIn,
		keys:   defaultKeys(),
		help:   help.New(),
		editor: editor,
		status: "starting",
		busy:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.run("restore", m.sync.Restore)
}

// run executes a controller call off the UI goroutine.
func (m Model) run(action string, call func(context.Context) error) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		return doneMsg{action: action, err: call(ctx)}
	}
}

func (m Model) createCmd() tea.Cmd {
	ctx, sync := m.ctx, m.sync

	return func() tea.Msg {
		created, err := sync.Create(ctx)
		action := "create"
		if created != nil {
			action = "created " + created.ID
		}

		return doneMsg{action: action, err: err}
	}
}

func (m Model) expandCmd(id string) tea.Cmd {
	ctx, sync := m.ctx, m.sync

	return func() tea.Msg {
		_, err := sync.Expand(ctx, id)

		return doneMsg{action: "show " + id, err: err}
	}
}

func (m Model) signInCmd() tea.Cmd {
	ctx, sync := m.ctx, m.sync

	return func() tea.Msg {
		return signInStartedMsg{err: sync.SignIn(ctx)}
	}
}

func (m Model) waitSignInCmd() tea.Cmd {
	ctx, waiter := m.ctx, m.signIn

	return func() tea.Msg {
		session, err := waiter.Wait(ctx)

		return signInMsg{session: session, err: err}
	}
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.editor.SetWidth(max(msg.Width-8, 20))

		return m, nil

	case doneMsg:
		m.busy = false
		m.status = describe(msg.action, msg.err)
		m.clampCursor()

		return m, nil

	case promptMsg:
		m.prompt += msg.text

		return m, nil

	case signInStartedMsg:
		if msg.err != nil {
			m.busy = false
			m.prompt = ""
			m.status = describe("sign in", msg.err)

			return m, nil
		}
		m.waiting = true
		m.status = "waiting for sign-in to finish in the browser"

		return m, m.waitSignInCmd()

	case signInMsg:
		m.waiting = false
		m.prompt = ""
		if msg.err != nil {
			m.busy = false
			m.status = describe("sign in", msg.err)

			return m, nil
		}
		session := msg.session
		m.status = "signed in as " + session.Identity.Username

		return m, m.run("sign in", func(ctx context.Context) error {
			return m.sync.Attach(ctx, session)
		})

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}

		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()

		return m, nil
	}

	view := m.sync.View()
	if m.busy || m.waiting || view.State == usecase.StateLoading {
		m.status = "busy, please wait"

		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.SignIn):
		if view.State != usecase.StateAnonymous {
			m.status = "already signed in"

			return m, nil
		}
		if m.signIn == nil {
			m.status = "sign in with `fragments login` first"

			return m, nil
		}
		m.busy = true
		m.prompt = ""
		m.status = "opening browser"

		return m, m.signInCmd()

	case key.Matches(msg, m.keys.SignOut):
		m.busy = true
		m.cursor = 0

		return m, m.run("sign out", m.sync.SignOut)

	case key.Matches(msg, m.keys.Refresh):
		m.busy = true

		return m, m.run("refresh", m.sync.Refresh)

	case key.Matches(msg, m.keys.New):
		m.editing = true
		m.editor.SetValue(view.Draft.Content)
		m.typeIdx = max(slices.Index(entity.SupportedFragmentTypes, view.Draft.Type), 0)

		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Delete):
		id, ok := m.selected(view)
		if !ok {
			return m, nil
		}
		m.busy = true

		return m, m.run("delete "+id, func(ctx context.Context) error {
			return m.sync.Delete(ctx, id)
		})

	case key.Matches(msg, m.keys.Expand):
		id, ok := m.selected(view)
		if !ok {
			return m, nil
		}
		if view.Detail != nil && view.Detail.ID == id {
			m.sync.Collapse()

			return m, nil
		}
		m.busy = true

		return m, m.expandCmd(id)
	}

	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.sync.SetDraft(m.editor.Value(), m.draftType())
		m.editing = false
		m.editor.Blur()

		return m, nil

	case key.Matches(msg, m.keys.NextType):
		m.typeIdx = (m.typeIdx + 1) % len(entity.SupportedFragmentTypes)

		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.sync.SetDraft(m.editor.Value(), m.draftType())
		m.editing = false
		m.editor.Blur()
		m.busy = true

		return m, m.createCmd()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

func (m Model) draftType() entity.FragmentType {
	return entity.SupportedFragmentTypes[m.typeIdx]
}

func (m Model) selected(view usecase.SyncView) (string, bool) {
	if m.cursor < 0 || m.cursor >= len(view.Fragments) {
		return "", false
	}

	return view.Fragments[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	n := len(m.sync.View().Fragments)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func describe(action string, err error) string {
	switch {
	case err == nil:
		return action + ": done"
	case errors.Is(err, usecase.ErrSessionChanged):
		return action + ": discarded, session changed"
	default:
		return action + ": " + err.Error()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	view := m.sync.View()

	sections := []string{m.renderHeader(view), m.renderList(view)}
	if view.Detail != nil {
		sections = append(sections, m.renderDetail(view.Detail))
	}
	if m.editing {
		sections = append(sections, m.renderEditor())
	}
	if m.prompt != "" {
		sections = append(sections, theme.PaneActive.Render(theme.Title.Render("Sign in")+"\n"+strings.TrimSpace(m.prompt)))
	}
	if view.Diagnostic != nil {
		sections = append(sections, theme.Bad.Render(view.Diagnostic.Error()))
	}
	sections = append(sections, theme.Muted.Render(m.status))

	if m.editing {
		sections = append(sections, m.help.View(editorKeys{m.keys}))
	} else {
		sections = append(sections, m.help.View(m.keys))
	}

	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader(view usecase.SyncView) string {
	title := theme.Title.Render("fragments")
	if view.User == nil {
		return title + "  " + theme.Muted.Render("signed out")
	}

	user := view.User.Username
	if view.User.Email != "" && view.User.Email != user {
		user += " <" + view.User.Email + ">"
	}

	return title + "  " + theme.Good.Render(user) + "  " + theme.Muted.Render(view.State.String())
}

func (m Model) renderList(view usecase.SyncView) string {
	var b strings.Builder

	switch {
	case view.State == usecase.StateAnonymous:
		b.WriteString(theme.Muted.Render("Sign in to see your fragments (press l)."))
	case view.State == usecase.StateLoading && len(view.Fragments) == 0:
		b.WriteString(theme.Muted.Render("Loading…"))
	case view.Empty():
		b.WriteString(theme.Muted.Render("No fragments yet. Press n to create one."))
	default:
		for i, f := range view.Fragments {
			line := fmt.Sprintf("%-36s  %-16s  %8s  %s",
				f.ID, f.Type.MediaType(), util.FormatBytes(int64(f.Size)), f.Created.Local().Format("2006-01-02 15:04"))
			if view.Detail != nil && view.Detail.ID == f.ID && f.Type.IsText() {
				line += "  " + theme.Muted.Render(util.Preview(view.Detail.Content, previewWidth))
			}
			if i == m.cursor {
				b.WriteString(theme.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			if i < len(view.Fragments)-1 {
				b.WriteString("\n")
			}
		}
	}

	if view.State == usecase.StateError && view.Err != nil {
		b.WriteString("\n" + theme.Bad.Render("refresh failed: "+view.Err.Error()))
	}

	return theme.Pane.Render(b.String())
}

func (m Model) renderDetail(f *entity.Fragment) string {
	header := theme.Hot.Render(f.ID) + "  " + theme.Muted.Render(f.Type.String())

	var body string
	switch {
	case len(f.Content) == 0:
		body = theme.Muted.Render("(empty)")
	case f.Type.IsText():
		body = string(f.Content)
	default:
		body = fmt.Sprintf("[%s of %s]", util.FormatBytes(int64(len(f.Content))), f.Type)
	}

	return theme.PaneActive.Render(header + "\n" + body)
}

func (m Model) renderEditor() string {
	label := theme.Title.Render("New fragment") + "  " + theme.Hot.Render(m.draftType().String())

	return theme.PaneActive.Render(label + "\n" + m.editor.View())
}
