package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/config"
)

func newManager() (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	return NewManager(store, config.Session{CookieName: "sid", TTL: time.Hour}), store
}

func requestWithCookies(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestManager_LoadAnonymous(t *testing.T) {
	m, _ := newManager()

	s, err := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Empty(t, s.ID)
	assert.False(t, s.IsAdmin)

	s, err = m.Load(requestWithCookies([]*http.Cookie{{Name: "sid", Value: "not-a-uuid"}}))
	require.NoError(t, err)
	assert.Empty(t, s.ID)
}

func TestManager_RenewAndDestroy(t *testing.T) {
	ctx := context.Background()
	m, store := newManager()

	rec := httptest.NewRecorder()
	first, err := m.Renew(ctx, rec, Session{}, Data{IsAdmin: true})
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "sid", c.Name)
	assert.Equal(t, first.ID, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	loaded, err := m.Load(requestWithCookies(cookies))
	require.NoError(t, err)
	assert.Equal(t, first.ID, loaded.ID)
	assert.True(t, loaded.IsAdmin)

	rec = httptest.NewRecorder()
	second, err := m.Renew(ctx, rec, loaded, Data{IsAdmin: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	_, err = store.Get(ctx, first.ID)
	require.ErrorIs(t, err, ErrNotFound)

	rec = httptest.NewRecorder()
	require.NoError(t, m.Destroy(ctx, rec, second))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)

	after, err := m.Load(requestWithCookies([]*http.Cookie{{Name: "sid", Value: second.ID}}))
	require.NoError(t, err)
	assert.False(t, after.IsAdmin)
}
