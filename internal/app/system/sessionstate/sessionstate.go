// internal/app/system/sessionstate/sessionstate.go

// Package sessionstate provides session-scoped string slots for the Today
// dashboard trackers (momentum acknowledgment, soft landing).
//
// Slots live for one browser session. The Store interface is injected into
// the trackers so tests can run against an in-memory map while production
// uses the signed session cookie. Implementations never propagate storage
// failures: a failed read reports the slot as absent and a failed write
// reports false. Concurrent writes from multiple tabs are last-writer-wins.
package sessionstate

import (
	"net/http"
	"sync"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Slot keys used by the Today trackers.
const (
	KeyMomentum          = "momentum"
	KeySoftLanding       = "soft_landing"
	KeySoftLandingSource = "soft_landing_source"
)

// Store reads and writes session-scoped string slots.
//
// Get reports ok=false when the slot is absent or the backing storage is
// unavailable. Set reports whether the write was persisted.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) bool
}

/* ------------------------------ in-memory ------------------------------- */

// Memory is a Store backed by a map. Used in tests and anywhere no
// browser session exists.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the slot value if present.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores the slot value. Always succeeds.
func (m *Memory) Set(key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return true
}

/* ---------------------------- cookie-backed ----------------------------- */

// Cookie is a Store bound to one request/response pair, persisting slots in
// the signed session cookie. Each Set saves the session immediately so the
// Set-Cookie header is written even when the handler bails out early.
type Cookie struct {
	w     http.ResponseWriter
	r     *http.Request
	store sessions.Store
	name  string
	log   *zap.Logger
}

// NewCookie binds a cookie-backed Store to the given request and response.
func NewCookie(w http.ResponseWriter, r *http.Request, store sessions.Store, name string, logger *zap.Logger) *Cookie {
	return &Cookie{w: w, r: r, store: store, name: name, log: logger}
}

// Get reads a slot from the session cookie. A cookie that fails to decode
// (stale key, tampered value) is treated as an absent session rather than
// an error; gorilla already hands back a fresh session in that case.
func (c *Cookie) Get(key string) (string, bool) {
	sess, err := c.store.Get(c.r, c.name)
	if err != nil && !isStaleCookie(err) {
		c.log.Warn("session read failed", zap.String("key", key), zap.Error(err))
	}
	if sess == nil {
		return "", false
	}
	v, ok := sess.Values[key].(string)
	return v, ok
}

// Set writes a slot and saves the session. Returns false when the save
// fails; the dashboard degrades to unpersisted state in that case.
func (c *Cookie) Set(key, value string) bool {
	sess, err := c.store.Get(c.r, c.name)
	if sess == nil {
		if err != nil && !isStaleCookie(err) {
			c.log.Warn("session read failed before write", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	sess.Values[key] = value
	if err := sess.Save(c.r, c.w); err != nil {
		c.log.Warn("session write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// isStaleCookie reports whether err is a securecookie decode failure,
// which happens routinely after key rotation or with very old cookies.
func isStaleCookie(err error) bool {
	if scErr, ok := err.(securecookie.Error); ok {
		return scErr.IsDecode()
	}
	return false
}
