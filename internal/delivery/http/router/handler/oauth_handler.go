package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"fragments/internal/delivery/http/response"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var approvalPage = template.Must(template.New("approve").Parse(`<!doctype html>
<html><head><title>Sign in to fragments</title></head>
<body>
<h1>Sign in to fragments</h1>
<form method="post" action="/oauth2/authorize">
{{range $k, $v := .Params}}<input type="hidden" name="{{$k}}" value="{{$v}}">
{{end}}<label>Username <input name="login_hint" autofocus></label>
<button type="submit">Sign in</button>
</form>
</body></html>
`))

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthorizationUsecase
	Logger *slog.Logger
}

// OAuthHandler is the development identity provider's HTTP surface.
type OAuthHandler struct {
	authUC usecase.AuthorizationUsecase
	logger *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// tokenError is the RFC 6749 error body.
type tokenError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Authorize approves immediately when login_hint names the user, otherwise asks for a name.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	var req usecase.AuthorizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid authorization request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.LoginHint == "" {
		params := map[string]string{
			"client_id":             req.ClientID,
			"redirect_uri":          req.RedirectURI,
			"response_type":         req.ResponseType,
			"scope":                 req.Scope,
			"state":                 req.State,
			"code_challenge":        req.CodeChallenge,
			"code_challenge_method": req.CodeChallengeMethod,
		}
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(http.StatusOK)

		return approvalPage.Execute(c.Response(), map[string]any{"Params": params})
	}

	code, err := h.authUC.Authorize(c.Request().Context(), &req, req.LoginHint)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	redirect, err := url.Parse(req.RedirectURI)
	if err != nil {
		return response.BadRequest(c, "invalid redirect_uri")
	}
	query := redirect.Query()
	query.Set("code", code)
	query.Set("state", req.State)
	redirect.RawQuery = query.Encode()

	return c.Redirect(http.StatusFound, redirect.String())
}

// Token redeems an authorization code.
func (h *OAuthHandler) Token(c echo.Context) error {
	if grantType := c.FormValue("grant_type"); grantType != "authorization_code" {
		return c.JSON(http.StatusBadRequest, tokenError{Error: "unsupported_grant_type"})
	}

	grant, err := h.authUC.Exchange(
		c.Request().Context(),
		c.FormValue("code"),
		c.FormValue("code_verifier"),
		c.FormValue("redirect_uri"),
	)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && errors.Is(err, domainerrors.ErrInvalidGrant) {
			return c.JSON(http.StatusBadRequest, tokenError{Error: "invalid_grant", ErrorDescription: appErr.Details()})
		}

		return err
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.JSON(http.StatusOK, grant)
}
