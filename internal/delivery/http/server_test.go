package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"fragments/internal/bootstrap/stubtest"
	deliverycontext "fragments/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func do(t *testing.T, method, target, token, contentType, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, target, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, payload
}

type envelope struct {
	Status    string          `json:"status"`
	Fragments json.RawMessage `json:"fragments"`
	Fragment  map[string]any  `json:"fragment"`
	Error     map[string]any  `json:"error"`
}

func decode(t *testing.T, payload []byte) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(payload, &env), string(payload))

	return env
}

func TestStub_Health(t *testing.T) {
	stub := stubtest.Start(t, stubtest.NewConfig())

	resp, payload := do(t, http.MethodGet, stub.URL+"/health", "", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, payload).Status)
	assert.NotEmpty(t, resp.Header.Get(deliverycontext.HeaderXRequestID))
}

func TestStub_RequiresBearerToken(t *testing.T) {
	stub := stubtest.Start(t, stubtest.NewConfig())

	resp, payload := do(t, http.MethodGet, stub.URL+"/v1/fragments", "", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	env := decode(t, payload)
	assert.Equal(t, "error", env.Status)
	assert.EqualValues(t, http.StatusUnauthorized, env.Error["code"])

	resp, _ = do(t, http.MethodGet, stub.URL+"/v1/fragments", "not-a-jwt", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStub_FragmentLifecycle(t *testing.T) {
	stub := stubtest.Start(t, stubtest.NewConfig())
	token := stub.Session(t, "alice").Credential.Token

	resp, payload := do(t, http.MethodPost, stub.URL+"/v1/fragments", token, "text/plain", "hello")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(payload))
	created := decode(t, payload).Fragment
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, stub.URL+"/v1/fragments/"+id, resp.Header.Get("Location"))
	assert.Equal(t, "text/plain", created["type"])
	assert.EqualValues(t, 5, created["size"])

	resp, payload = do(t, http.MethodGet, stub.URL+"/v1/fragments", token, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `["`+id+`"]`, string(decode(t, payload).Fragments))

	resp, payload = do(t, http.MethodGet, stub.URL+"/v1/fragments?expand=1", token, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var expanded []map[string]any
	require.NoError(t, json.Unmarshal(decode(t, payload).Fragments, &expanded))
	require.Len(t, expanded, 1)
	assert.Equal(t, id, expanded[0]["id"])

	resp, payload = do(t, http.MethodGet, stub.URL+"/v1/fragments/"+id, token, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(payload))
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

	resp, payload = do(t, http.MethodGet, stub.URL+"/v1/fragments/"+id+"/info", token, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, decode(t, payload).Fragment["id"])

	resp, _ = do(t, http.MethodDelete, stub.URL+"/v1/fragments/"+id, token, "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload = do(t, http.MethodDelete, stub.URL+"/v1/fragments/"+id, token, "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decode(t, payload).Error["message"], "fragment not found")
}

func TestStub_CreateRejections(t *testing.T) {
	cfg := stubtest.NewConfig()
	cfg.Stub.MaxFragmentSize = 8
	stub := stubtest.Start(t, cfg)
	token := stub.Session(t, "alice").Credential.Token

	cases := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{name: "unsupported type", contentType: "image/png", body: "png", status: http.StatusUnsupportedMediaType},
		{name: "missing type", contentType: "", body: "text", status: http.StatusUnsupportedMediaType},
		{name: "empty body", contentType: "text/plain", body: "", status: http.StatusBadRequest},
		{name: "too large", contentType: "text/plain", body: "123456789", status: http.StatusRequestEntityTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, payload := do(t, http.MethodPost, stub.URL+"/v1/fragments", token, tc.contentType, tc.body)

			assert.Equal(t, tc.status, resp.StatusCode)
			env := decode(t, payload)
			assert.Equal(t, "error", env.Status)
			assert.EqualValues(t, tc.status, env.Error["code"])
		})
	}
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestStub_AuthorizationCodeFlow(t *testing.T) {
	stub := stubtest.Start(t, stubtest.NewConfig())
	verifier := oauth2.GenerateVerifier()
	redirectURI := "http://127.0.0.1:8765/callback"

	query := url.Values{
		"client_id":             {"fragments-cli"},
		"redirect_uri":          {redirectURI},
		"response_type":         {"code"},
		"state":                 {"state-1"},
		"code_challenge":        {oauth2.S256ChallengeFromVerifier(verifier)},
		"code_challenge_method": {"S256"},
	}

	// Without a login hint the user is asked for a name.
	resp, err := noRedirectClient().Get(stub.URL + "/oauth2/authorize?" + query.Encode())
	require.NoError(t, err)
	page, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(page), `name="login_hint"`)

	query.Set("login_hint", "alice@example.com")
	resp, err = noRedirectClient().Get(stub.URL + "/oauth2/authorize?" + query.Encode())
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "state-1", location.Query().Get("state"))
	code := location.Query().Get("code")
	require.NotEmpty(t, code)

	exchange := func(code, verifier string) (*http.Response, map[string]any) {
		resp, err := http.PostForm(stub.URL+"/oauth2/token", url.Values{
			"grant_type":    {"authorization_code"},
			"code":          {code},
			"code_verifier": {verifier},
			"redirect_uri":  {redirectURI},
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		return resp, body
	}

	resp, body := exchange(code, "wrong-verifier")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_grant", body["error"])

	// A failed redemption burns the code.
	resp, body = exchange(code, verifier)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_grant", body["error"])
}

func TestStub_TokenRejectsUnknownGrantType(t *testing.T) {
	stub := stubtest.Start(t, stubtest.NewConfig())

	resp, err := http.PostForm(stub.URL+"/oauth2/token", url.Values{"grant_type": {"password"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStub_AuthorizeValidatesRequest(t *testing.T) {
	stub := stubtest.Start(t, stubtest.NewConfig())

	resp, payload := do(t, http.MethodGet, stub.URL+"/oauth2/authorize?response_type=code&client_id=x", "", "", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", decode(t, payload).Status)
}
