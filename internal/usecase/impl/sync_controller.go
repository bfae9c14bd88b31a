package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/domain/service"
	"fragments/internal/infra/metrics"
	"fragments/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SyncControllerParams holds dependencies for syncController, injected by Fx.
type SyncControllerParams struct {
	fx.In

	Provider service.SessionProvider
	Client   service.FragmentClient
	Logger   *slog.Logger
	Recorder metrics.Recorder `optional:"true"`
}

// syncController owns the view. mu guards the fields below it and is never held across a
// call to the provider or the client; results are applied only if the session that started
// the call is still current.
type syncController struct {
	provider service.SessionProvider
	client   service.FragmentClient
	recorder metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	session    *entity.Session
	state      usecase.SyncState
	fragments  []entity.Fragment
	refreshErr error
	diagnostic error
	draft      entity.Draft
	detail     *entity.Fragment
}

// NewSyncController creates the controller in the anonymous state.
func NewSyncController(params SyncControllerParams) usecase.SyncUsecase {
	recorder := params.Recorder
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &syncController{
		provider: params.Provider,
		client:   params.Client,
		recorder: recorder,
		logger:   params.Logger,
		now:      time.Now,
		state:    usecase.StateAnonymous,
		draft:    defaultDraft(),
	}
}

func defaultDraft() entity.Draft {
	return entity.Draft{Type: entity.FragmentTypeText}
}

func (c *syncController) Restore(ctx context.Context) error {
	session := c.provider.GetUser(ctx)
	if session == nil {
		c.logger.DebugContext(ctx, "No session to restore, staying anonymous")

		return nil
	}

	c.mu.Lock()
	attached := c.session != nil
	c.mu.Unlock()
	if attached {
		// A sign-in completed while the persisted session was being read.
		return nil
	}

	return c.Attach(ctx, session)
}

func (c *syncController) Attach(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return domainerrors.NewAuthRequired("attach requires a session")
	}

	c.mu.Lock()
	if !c.session.SameAs(session) {
		// Fragments of another sign-in never carry over.
		c.fragments = nil
		c.detail = nil
		c.diagnostic = nil
		c.refreshErr = nil
	}
	c.session = session
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "Session attached", slog.String("username", session.Identity.Username))

	return c.refresh(ctx, session)
}

func (c *syncController) SignIn(ctx context.Context) error {
	return errors.Wrap(c.provider.SignIn(ctx), "sign in")
}

func (c *syncController) Refresh(ctx context.Context) error {
	session, err := c.requireSession("refresh")
	if err != nil {
		return err
	}

	return c.refresh(ctx, session)
}

func (c *syncController) SetDraft(content string, fragmentType entity.FragmentType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = entity.Draft{Content: content, Type: fragmentType}
}

func (c *syncController) Create(ctx context.Context) (*entity.Fragment, error) {
	session, err := c.requireSession("create")
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	draft := c.draft
	c.mu.Unlock()

	created, err := c.client.CreateFragment(ctx, session, []byte(draft.Content), draft.Type)

	c.mu.Lock()
	if !c.session.SameAs(session) {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Discarding create result for a previous session")

		return nil, usecase.ErrSessionChanged
	}
	if err != nil {
		c.diagnostic = err
		c.mu.Unlock()

		return nil, err
	}
	// Input typed while the request was in flight is kept.
	if c.draft == draft {
		c.draft = defaultDraft()
	}
	c.diagnostic = nil
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "Fragment created", slog.String("id", created.ID))

	return created, c.refresh(ctx, session)
}

func (c *syncController) Delete(ctx context.Context, id string) error {
	session, err := c.requireSession("delete")
	if err != nil {
		return err
	}

	err = c.client.DeleteFragment(ctx, session, id)

	c.mu.Lock()
	if !c.session.SameAs(session) {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Discarding delete result for a previous session")

		return usecase.ErrSessionChanged
	}
	if err != nil {
		c.diagnostic = err
		c.mu.Unlock()

		return err
	}
	if c.detail != nil && c.detail.ID == id {
		c.detail = nil
	}
	c.diagnostic = nil
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "Fragment deleted", slog.String("id", id))

	return c.refresh(ctx, session)
}

func (c *syncController) Expand(ctx context.Context, id string) (*entity.Fragment, error) {
	session, err := c.requireSession("expand")
	if err != nil {
		return nil, err
	}

	fragment, err := c.client.GetFragment(ctx, session, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.SameAs(session) {
		return nil, usecase.ErrSessionChanged
	}
	if err != nil {
		c.diagnostic = err

		return nil, err
	}
	c.detail = fragment
	c.diagnostic = nil

	return cloneFragment(fragment), nil
}

func (c *syncController) Collapse() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detail = nil
}

func (c *syncController) SignOut(ctx context.Context) error {
	err := c.provider.SignOut(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Identity provider sign-out failed", slog.Any("error", err))
	}

	c.mu.Lock()
	c.session = nil
	c.state = usecase.StateAnonymous
	c.fragments = nil
	c.refreshErr = nil
	c.diagnostic = nil
	c.draft = defaultDraft()
	c.detail = nil
	c.mu.Unlock()

	c.recorder.RecordRefresh(0)
	c.logger.InfoContext(ctx, "Signed out")

	return errors.Wrap(err, "sign out")
}

func (c *syncController) View() usecase.SyncView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := usecase.SyncView{
		State:      c.state,
		Fragments:  slices.Clone(c.fragments),
		Err:        c.refreshErr,
		Diagnostic: c.diagnostic,
		Draft:      c.draft,
		Detail:     cloneFragment(c.detail),
	}
	if c.session != nil {
		identity := c.session.Identity
		view.User = &identity
	}
	if view.Fragments == nil {
		view.Fragments = []entity.Fragment{}
	}

	return view
}

// refresh lists the session's fragments and applies the result if the session is still current.
func (c *syncController) refresh(ctx context.Context, session *entity.Session) error {
	c.mu.Lock()
	if !c.session.SameAs(session) {
		c.mu.Unlock()

		return usecase.ErrSessionChanged
	}
	c.state = usecase.StateLoading
	c.mu.Unlock()

	fragments, err := c.client.ListFragments(ctx, session)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.SameAs(session) {
		c.logger.DebugContext(ctx, "Discarding fragment list for a previous session")

		return usecase.ErrSessionChanged
	}
	if err != nil {
		c.state = usecase.StateError
		c.refreshErr = err
		c.logger.WarnContext(ctx, "Fragment refresh failed", slog.Any("error", err))

		return err
	}

	c.state = usecase.StateReady
	c.fragments = fragments
	c.refreshErr = nil
	c.recorder.RecordRefresh(len(fragments))

	return nil
}

// requireSession returns the current session, or records an AuthRequired diagnostic when there
// is no usable one so that no request is issued.
func (c *syncController) requireSession(action string) (*entity.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		err := domainerrors.NewAuthRequired(action + " requires sign-in")
		c.diagnostic = err

		return nil, err
	}
	if !c.session.Usable(c.now()) {
		err := domainerrors.NewAuthRequired("session expired, sign in again")
		c.diagnostic = err

		return nil, err
	}

	return c.session, nil
}

func cloneFragment(f *entity.Fragment) *entity.Fragment {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Content = slices.Clone(f.Content)

	return &clone
}
