package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/pkg/oauth"
)

type fakeGoogle struct {
	profile oauth.GoogleProfile
}

func (f *fakeGoogle) GenerateState() (string, error) { return "state-123", nil }

func (f *fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeGoogle) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "google-" + code}, nil
}

func (f *fakeGoogle) FetchProfile(ctx context.Context, token *oauth2.Token) (oauth.GoogleProfile, error) {
	return f.profile, nil
}

func (s *testServer) callback(query string, state string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/oauth/callback/google?"+query, nil)
	if state != "" {
		req.AddCookie(&http.Cookie{Name: stateCookieName, Value: state})
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) url.Values {
	t.Helper()
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, frontendCallbackURI, location.Path)
	return location.Query()
}

func TestAccount_LoginWithGoogle_Redirects(t *testing.T) {
	s := newTestServerWithGoogle(t, &fakeGoogle{})

	rec := s.do(http.MethodGet, "/api/v1/account/login/oauth/google", "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.example.com/auth?state=state-123", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, stateCookieName, cookies[0].Name)
	assert.Equal(t, "state-123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

// linkGoogle starts a link as the holder of token and completes it through the callback.
func (s *testServer) linkGoogle(token string) url.Values {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/users/link/google", token, nil)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var link auth.GoogleLinkResponse
	data(s.t, rec, &link)
	assert.Equal(s.t, "https://accounts.example.com/auth?state=state-123", link.URL)

	cookies := rec.Result().Cookies()
	require.Len(s.t, cookies, 1)
	assert.Equal(s.t, stateCookieName, cookies[0].Name)

	return redirectQuery(s.t, s.callback("state="+cookies[0].Value+"&code=xyz", cookies[0].Value))
}

func TestAccount_OAuthCallbackGoogle(t *testing.T) {
	google := &fakeGoogle{profile: oauth.GoogleProfile{GoogleID: "sub-alice", Email: "alice@example.com", VerifiedEmail: true}}
	s := newTestServerWithGoogle(t, google)
	aliceToken := s.register("alice", "pw1")

	t.Run("unlinked google account cannot sign in", func(t *testing.T) {
		query := redirectQuery(t, s.callback("state=abc&code=xyz", "abc"))
		assert.Equal(t, "account_not_linked", query.Get("error"))
		assert.Empty(t, query.Get("token"))
	})

	t.Run("matching email does not select the account", func(t *testing.T) {
		google.profile = oauth.GoogleProfile{GoogleID: "sub-intruder", Email: "admin@admin.com", VerifiedEmail: true}
		defer func() { google.profile.GoogleID, google.profile.Email = "sub-alice", "alice@example.com" }()

		query := redirectQuery(t, s.callback("state=abc&code=xyz", "abc"))
		assert.Equal(t, "account_not_linked", query.Get("error"))
		assert.Empty(t, query.Get("token"))
	})

	t.Run("linking requires a token", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/v1/users/link/google", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("linked account gets a token", func(t *testing.T) {
		query := s.linkGoogle(aliceToken)
		assert.Equal(t, "true", query.Get("linked"))
		assert.Empty(t, query.Get("error"))
		assert.Empty(t, query.Get("token"))

		query = redirectQuery(t, s.callback("state=abc&code=xyz", "abc"))
		assert.Empty(t, query.Get("error"))
		require.NotEmpty(t, query.Get("token"))
		assert.NotEmpty(t, query.Get("expires_at"))

		rec := s.do(http.MethodGet, "/api/v1/users/me", query.Get("token"), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var me struct {
			Username string `json:"username"`
		}
		data(t, rec, &me)
		assert.Equal(t, "alice", me.Username)
	})

	t.Run("google account already linked elsewhere", func(t *testing.T) {
		bobToken := s.register("bob", "pw2")
		query := s.linkGoogle(bobToken)
		assert.Equal(t, "google_account_in_use", query.Get("error"))
		assert.Empty(t, query.Get("linked"))
	})

	t.Run("state mismatch", func(t *testing.T) {
		query := redirectQuery(t, s.callback("state=abc&code=xyz", "other"))
		assert.Equal(t, "state_mismatch", query.Get("error"))
		assert.Empty(t, query.Get("token"))
	})

	t.Run("missing state cookie", func(t *testing.T) {
		query := redirectQuery(t, s.callback("state=abc&code=xyz", ""))
		assert.Equal(t, "state_cookie_not_found", query.Get("error"))
	})

	t.Run("user denied consent", func(t *testing.T) {
		query := redirectQuery(t, s.callback("error=access_denied", "abc"))
		assert.Equal(t, "access_denied", query.Get("error"))
	})

	t.Run("missing code", func(t *testing.T) {
		query := redirectQuery(t, s.callback("state=abc", "abc"))
		assert.Equal(t, "code_empty", query.Get("error"))
	})

	t.Run("profile without account id", func(t *testing.T) {
		google.profile = oauth.GoogleProfile{Email: "alice@example.com", VerifiedEmail: true}
		query := redirectQuery(t, s.callback("state=abc&code=xyz", "abc"))
		assert.Equal(t, "user_verification_failed", query.Get("error"))
	})
}

func TestAccount_LinkGoogle_Disabled(t *testing.T) {
	s := newTestServer(t)
	token := s.register("alice", "pw1")

	rec := s.do(http.MethodPost, "/api/v1/users/link/google", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPendingGoogleLinks(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	links := newPendingGoogleLinks(5 * time.Minute)
	links.now = func() time.Time { return now }

	links.add("s1", "user-1")
	userID, ok := links.take("s1")
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)

	_, ok = links.take("s1")
	assert.False(t, ok, "state is single use")

	links.add("s2", "user-2")
	now = now.Add(6 * time.Minute)
	_, ok = links.take("s2")
	assert.False(t, ok, "expired state")

	links.add("s3", "user-3")
	now = now.Add(6 * time.Minute)
	links.add("s4", "user-4")
	assert.Len(t, links.entries, 1, "expired entries are swept")
}

func TestAccount_OAuthCallbackGoogle_Disabled(t *testing.T) {
	s := newTestServer(t)

	rec := s.callback("state=abc&code=xyz", "abc")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
