package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/cookie"
)

const testSecret = "this-is-a-32-byte-or-longer-key!"

func roundTrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestManager_Plain(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "missing")
	assert.ErrorIs(t, err, cookie.ErrNotFound)

	w := httptest.NewRecorder()
	m.Set(w, "theme", "dark", 3600)
	c := w.Result().Cookies()[0]
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	val, err := m.Get(roundTrip(t, w), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", val)

	w = httptest.NewRecorder()
	m.Delete(w, "theme")
	assert.Negative(t, w.Result().Cookies()[0].MaxAge)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecret(testSecret))
	require.True(t, m.CanSign())

	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "pf_session", "01ARZ3NDEKTSV4RRFFQ69G5FAV", 0))

	val, err := m.GetSigned(roundTrip(t, w), "pf_session")
	require.NoError(t, err)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", val)

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()
		raw := w.Result().Cookies()[0].Value
		enc, sig, _ := strings.Cut(raw, ".")
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "pf_session", Value: enc + "x." + sig})
		_, err := m.GetSigned(r, "pf_session")
		assert.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("unsigned", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "pf_session", Value: "plain"})
		_, err := m.GetSigned(r, "pf_session")
		assert.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("other secret", func(t *testing.T) {
		t.Parallel()
		other := cookie.New(cookie.WithSecret(strings.Repeat("z", 40)))
		_, err := other.GetSigned(roundTrip(t, w), "pf_session")
		assert.ErrorIs(t, err, cookie.ErrBadSig)
	})
}

func TestManager_NoSecret(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecret("short"))
	assert.False(t, m.CanSign())
	assert.ErrorIs(t, m.SetSigned(httptest.NewRecorder(), "a", "b", 0), cookie.ErrNoSecret)
	_, err := m.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "a")
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.Config{Secret: testSecret, Domain: "example.com", Secure: true}.Options()...)
	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "a", "b", 60))
	c := w.Result().Cookies()[0]
	assert.True(t, c.Secure)
	assert.Equal(t, "example.com", c.Domain)
}
