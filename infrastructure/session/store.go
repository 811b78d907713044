package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"my-videos/domain/model"

	"github.com/gin-gonic/gin"
)

// CookieName is the opaque browser session cookie.
const CookieName = "session_id"

// contextKey is where the middleware stores the request's session.
const contextKey = "session"

// Session holds per-browser OAuth flow state. It moves from unauthorized
// (nothing set) to authorization pending (state set) to authorized
// (credentials set).
type Session struct {
	mu          sync.Mutex
	state       string
	credentials *model.CredentialBundle
}

// SetState records the anti-forgery state for a pending authorization.
func (s *Session) SetState(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// ConsumeState returns the stored state and clears it so it cannot be
// replayed against a second callback.
func (s *Session) ConsumeState() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	s.state = ""
	return state
}

// SetCredentials stores the bundle obtained from a token exchange.
func (s *Session) SetCredentials(creds *model.CredentialBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials = creds
}

// Credentials returns the stored bundle, or nil while unauthorized.
func (s *Session) Credentials() *model.CredentialBundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credentials
}

// Store keeps sessions server-side, keyed by the opaque cookie value. State
// never crosses processes.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, or nil when the cookie is unknown.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Create registers a fresh session under a random id.
func (st *Store) Create() (string, *Session) {
	id := randomID()
	sess := &Session{}
	st.mu.Lock()
	st.sessions[id] = sess
	st.mu.Unlock()
	return id, sess
}

func randomID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// FromContext returns the request's session as attached by the middleware,
// or nil when none is present.
func FromContext(ctx *gin.Context) *Session {
	v, ok := ctx.Get(contextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*Session)
	return sess
}

// Attach stores the session on the request context.
func Attach(ctx *gin.Context, sess *Session) {
	ctx.Set(contextKey, sess)
}
