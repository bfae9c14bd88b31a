package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fragments/config"
	"fragments/internal/delivery/http/middleware"
	"fragments/internal/delivery/http/response"
	"fragments/internal/domain/entity"
	"fragments/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FragmentHandlerParams holds dependencies for FragmentHandler, injected by Fx.
type FragmentHandlerParams struct {
	fx.In

	Config     *config.Config
	FragmentUC usecase.FragmentUsecase
	Logger     *slog.Logger
}

// FragmentHandler serves the /v1/fragments resource.
type FragmentHandler struct {
	fragmentUC usecase.FragmentUsecase
	maxSize    int64
	logger     *slog.Logger
}

// NewFragmentHandler is the constructor for FragmentHandler
func NewFragmentHandler(params FragmentHandlerParams) *FragmentHandler {
	return &FragmentHandler{
		fragmentUC: params.FragmentUC,
		maxSize:    params.Config.Stub.MaxFragmentSize,
		logger:     params.Logger,
	}
}

// FragmentResponse is the metadata representation of a fragment.
type FragmentResponse struct {
	ID      string    `json:"id"`
	OwnerID string    `json:"ownerId"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
	Type    string    `json:"type"`
	Size    int       `json:"size"`
}

func toFragmentResponse(f *entity.Fragment) FragmentResponse {
	return FragmentResponse{
		ID:      f.ID,
		OwnerID: f.OwnerID,
		Created: f.Created,
		Updated: f.Updated,
		Type:    f.Type.String(),
		Size:    f.Size,
	}
}

// ListFragments returns ids, or full metadata with ?expand=1.
func (h *FragmentHandler) ListFragments(c echo.Context) error {
	fragments, err := h.fragmentUC.ListFragments(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("expand") != "1" {
		return response.Success(c, http.StatusOK, map[string]any{"fragments": entity.FragmentIDs(fragments)})
	}

	expanded := make([]FragmentResponse, 0, len(fragments))
	for i := range fragments {
		expanded = append(expanded, toFragmentResponse(&fragments[i]))
	}

	return response.Success(c, http.StatusOK, map[string]any{"fragments": expanded})
}

// CreateFragment stores the raw request body under its Content-Type.
func (h *FragmentHandler) CreateFragment(c echo.Context) error {
	req := c.Request()

	body := io.Reader(req.Body)
	if h.maxSize > 0 {
		body = io.LimitReader(req.Body, h.maxSize+1)
	}
	content, err := io.ReadAll(body)
	if err != nil {
		return response.BadRequest(c, "unable to read request body")
	}

	fragmentType := entity.FragmentType(req.Header.Get(echo.HeaderContentType))

	fragment, err := h.fragmentUC.CreateFragment(req.Context(), middleware.OwnerID(c), fragmentType, content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	location := c.Scheme() + "://" + req.Host + "/v1/fragments/" + fragment.ID
	c.Response().Header().Set(echo.HeaderLocation, location)

	return response.Success(c, http.StatusCreated, map[string]any{"fragment": toFragmentResponse(fragment)})
}

// GetFragment returns the raw content with its stored type.
func (h *FragmentHandler) GetFragment(c echo.Context) error {
	fragment, err := h.fragmentUC.GetFragment(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Length", strconv.Itoa(len(fragment.Content)))

	return c.Blob(http.StatusOK, fragment.Type.String(), fragment.Content)
}

// GetFragmentInfo returns metadata only.
func (h *FragmentHandler) GetFragmentInfo(c echo.Context) error {
	fragment, err := h.fragmentUC.GetFragment(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"fragment": toFragmentResponse(fragment)})
}

// DeleteFragment removes the fragment.
func (h *FragmentHandler) DeleteFragment(c echo.Context) error {
	if err := h.fragmentUC.DeleteFragment(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
