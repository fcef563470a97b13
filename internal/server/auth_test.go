package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/gate"
	"github.com/jonathan/placement-readiness/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthServer builds a server with passphrase auth enabled.
func newAuthServer(t *testing.T, passphrase string) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")
	t.Setenv("BCRYPT_COST", "10")

	pc := &config.PassphraseConfig{BcryptCost: 10}
	hash, err := pc.HashPassphrase(passphrase)
	require.NoError(t, err)

	srv, err := New(Options{
		Store:          store.New(store.NewMemorySlot()),
		Gate:           gate.New(store.NewMemorySlot()),
		PassphraseHash: hash,
	})
	require.NoError(t, err)
	return srv
}

func TestAuth_TokenExchange(t *testing.T) {
	srv := newAuthServer(t, "open sesame")

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/auth/token", TokenRequest{Passphrase: "open sesame"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody[TokenResponse](t, rec).Token
	assert.NotEmpty(t, token)

	rec = doJSON(t, srv.Handler(), http.MethodPost, "/auth/token", TokenRequest{Passphrase: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodPost, "/auth/token", TokenRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	srv := newAuthServer(t, "open sesame")

	// Mutating routes are locked without a token.
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/analyses", AnalyzeRequest{JDText: "React"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv.Handler(), http.MethodDelete, "/gate", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Reads stay open.
	rec = doJSON(t, srv.Handler(), http.MethodGet, "/analyses", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, srv.Handler(), http.MethodGet, "/gate", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_TokenGrantsAccess(t *testing.T) {
	srv := newAuthServer(t, "open sesame")

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/auth/token", TokenRequest{Passphrase: "open sesame"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody[TokenResponse](t, rec).Token

	req := httptest.NewRequest(http.MethodPost, "/analyses", jsonBody(t, AnalyzeRequest{JDText: "React"}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	out := httptest.NewRecorder()
	srv.Handler().ServeHTTP(out, req)
	assert.Equal(t, http.StatusCreated, out.Code)
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	srv := newAuthServer(t, "open sesame")

	cases := map[string]string{
		"malformed header": "NotBearer abc",
		"empty token":      "Bearer ",
		"garbage token":    "Bearer not.a.jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyses", jsonBody(t, AnalyzeRequest{JDText: "x"}))
			req.Header.Set("Authorization", header)
			out := httptest.NewRecorder()
			srv.Handler().ServeHTTP(out, req)
			assert.Equal(t, http.StatusUnauthorized, out.Code)
		})
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "s3cret", ExpirationHours: 1})

	token, err := svc.GenerateToken()
	require.NoError(t, err)
	assert.NoError(t, svc.ValidateToken(token))

	// A token signed with a different secret fails.
	other := NewJWTService(&config.JWTConfig{Secret: "different", ExpirationHours: 1})
	assert.Error(t, other.ValidateToken(token))

	assert.Error(t, svc.ValidateToken(""))
	assert.Error(t, svc.ValidateToken("junk"))
}
