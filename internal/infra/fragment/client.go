// Package fragment is the HTTP client for the remote fragment store.
package fragment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fragments/config"
	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/domain/service"
	"fragments/internal/infra/metrics"
	"fragments/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const (
	fragmentsPath = "/v1/fragments"

	// maxErrorBody bounds how much of a rejection body is read for its message.
	maxErrorBody = 64 << 10

	opList   = "list"
	opCreate = "create"
	opDelete = "delete"
	opGet    = "get"
	opInfo   = "info"
)

// createInput is validated before anything is sent.
type createInput struct {
	Content []byte `validate:"required,min=1"`
	Type    string `validate:"required,fragment_type"`
}

// idInput guards the per-fragment operations: an empty id would address the collection.
type idInput struct {
	ID string `validate:"required"`
}

var _ service.FragmentClient = (*Client)(nil)

// Client implements service.FragmentClient over the store's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authorizer service.Authorizer
	validate   *validator.Validate
	recorder   metrics.Recorder
	logger     *slog.Logger
}

// Params holds dependencies for Client, injected by Fx
type Params struct {
	fx.In

	Config     *config.Config
	Authorizer service.Authorizer
	Logger     *slog.Logger
	Recorder   metrics.Recorder  `optional:"true"`
	Transport  http.RoundTripper `optional:"true"`
}

// NewClient creates the fragment store client.
func NewClient(params Params) *Client {
	recorder := params.Recorder
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &Client{
		baseURL: strings.TrimRight(params.Config.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   params.Config.API.Timeout,
			Transport: newTransport(params.Transport, params.Config.API.UserAgent),
		},
		authorizer: params.Authorizer,
		validate:   validation.New(),
		recorder:   recorder,
		logger:     params.Logger,
	}
}

// ListFragments fetches the expanded list of the session's fragments.
func (c *Client) ListFragments(ctx context.Context, session *entity.Session) ([]entity.Fragment, error) {
	resp, err := c.do(ctx, opList, session, http.MethodGet, fragmentsPath+"?expand=1", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload listResponse
	if err := c.decode(resp, &payload); err != nil {
		return nil, c.fail(opList, err)
	}

	fragments := make([]entity.Fragment, 0, len(*payload.Fragments))
	for _, d := range *payload.Fragments {
		fragments = append(fragments, d.toEntity())
	}

	return fragments, nil
}

// CreateFragment posts content as the request body with its type as Content-Type.
func (c *Client) CreateFragment(
	ctx context.Context,
	session *entity.Session,
	content []byte,
	fragmentType entity.FragmentType,
) (*entity.Fragment, error) {
	if err := c.validate.Struct(createInput{Content: content, Type: fragmentType.String()}); err != nil {
		return nil, c.fail(opCreate, domainerrors.NewValidationFailure(validation.Describe(err)))
	}

	resp, err := c.do(ctx, opCreate, session, http.MethodPost, fragmentsPath, bytes.NewReader(content), fragmentType.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload fragmentResponse
	if err := c.decode(resp, &payload); err != nil {
		return nil, c.fail(opCreate, err)
	}

	created := payload.Fragment.toEntity()
	if created.Type == "" {
		created.Type = fragmentType
	}
	created.Content = bytes.Clone(content)

	c.logger.DebugContext(ctx, "Fragment created",
		slog.String("id", created.ID),
		slog.String("location", resp.Header.Get("Location")),
	)

	return &created, nil
}

// DeleteFragment removes the fragment; the store's 404 is surfaced for unknown ids.
func (c *Client) DeleteFragment(ctx context.Context, session *entity.Session, id string) error {
	if err := c.validateID(opDelete, id); err != nil {
		return err
	}

	resp, err := c.do(ctx, opDelete, session, http.MethodDelete, fragmentPath(id), nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// GetFragment fetches the raw content and its type.
func (c *Client) GetFragment(ctx context.Context, session *entity.Session, id string) (*entity.Fragment, error) {
	if err := c.validateID(opGet, id); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, opGet, session, http.MethodGet, fragmentPath(id), nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(opGet, domainerrors.NewTransportFailure(err))
	}

	return &entity.Fragment{
		ID:      id,
		Type:    entity.FragmentType(resp.Header.Get("Content-Type")),
		Size:    len(content),
		Content: content,
	}, nil
}

// GetFragmentInfo fetches metadata without content.
func (c *Client) GetFragmentInfo(ctx context.Context, session *entity.Session, id string) (*entity.Fragment, error) {
	if err := c.validateID(opInfo, id); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, opInfo, session, http.MethodGet, fragmentPath(id)+"/info", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload fragmentResponse
	if err := c.decode(resp, &payload); err != nil {
		return nil, c.fail(opInfo, err)
	}

	info := payload.Fragment.toEntity()

	return &info, nil
}

// do sends one authorized request. A non-nil response always has a 2xx status.
func (c *Client) do(
	ctx context.Context,
	op string,
	session *entity.Session,
	method, path string,
	body io.Reader,
	contentType string,
) (*http.Response, error) {
	headers, err := c.authorizer.AuthorizationHeaders(session)
	if err != nil {
		return nil, c.fail(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, c.fail(op, domainerrors.NewTransportFailure(err))
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(op, domainerrors.NewTransportFailure(err))
	}
	c.recorder.RecordResponse(op, resp.StatusCode, time.Since(start))

	c.logger.DebugContext(ctx, "Fragment store response",
		slog.String("operation", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()

		return nil, c.fail(op, rejection(resp))
	}

	return resp, nil
}

// decode reads a JSON success body and checks it has the expected shape.
func (c *Client) decode(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.NewMalformedResponse(resp.StatusCode, err)
	}
	if err := c.validate.Struct(out); err != nil {
		return domainerrors.NewMalformedResponse(resp.StatusCode, err)
	}

	return nil
}

func (c *Client) validateID(op, id string) error {
	if err := c.validate.Struct(idInput{ID: id}); err != nil {
		return c.fail(op, domainerrors.NewValidationFailure(validation.Describe(err)))
	}

	return nil
}

func (c *Client) fail(op string, err error) error {
	if kind := domainerrors.KindOf(err); kind != "" {
		c.recorder.RecordFailure(op, string(kind))
	}

	return err
}

// rejection keeps the status text exactly as received and adds the store's message when present.
func rejection(resp *http.Response) *domainerrors.FragmentError {
	var payload errorResponse
	details := ""
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && json.Unmarshal(raw, &payload) == nil {
		details = payload.Error.Message
	}

	return domainerrors.NewRemoteRejected(resp.StatusCode, statusText(resp), details)
}

// statusText strips the numeric code from "404 Not Found".
func statusText(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

func fragmentPath(id string) string {
	return fragmentsPath + "/" + url.PathEscape(id)
}
