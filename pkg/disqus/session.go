// Package disqus is a client-side object model over a remote forum service.
// A Session owns Forums, a Forum owns Threads, a Thread owns Posts; each
// child collection is fetched through the Gateway on first access and
// memoized until explicitly cleared. A failed fetch is never memoized, so
// re-invoking the accessor retries it.
//
// The model is defined for single-writer access. Sharing one Session, Forum
// or Thread across goroutines requires external synchronization.
package disqus

import (
	"github.com/rs/zerolog/log"
)

// Session is the root of the entity graph. It holds the user's key and the
// lazily fetched list of forums.
type Session struct {
	userKey string
	gateway Gateway
	forums  *ForumCollection
}

// NewSession creates a session for the given user key. The key comes from
// the surrounding application's configuration; the session never searches
// for one itself.
func NewSession(userKey string, gw Gateway) *Session {
	return &Session{userKey: userKey, gateway: gw}
}

// UserKey returns the session's user key.
func (s *Session) UserKey() string { return s.userKey }

func (s *Session) checkConfig() error {
	if s.gateway == nil {
		return &ConfigurationError{Reason: "no gateway"}
	}
	if s.userKey == "" {
		return &ConfigurationError{Reason: "no user key"}
	}
	return nil
}

// Forums returns the session's forums, fetching them on first call.
func (s *Session) Forums() (*ForumCollection, error) {
	if s.forums != nil {
		return s.forums, nil
	}
	if err := s.checkConfig(); err != nil {
		return nil, err
	}
	records, err := s.gateway.ForumList(s.userKey)
	if err != nil {
		return nil, &RemoteFetchError{Op: "forum list", Err: err}
	}
	forums := make([]*Forum, 0, len(records))
	for _, rec := range records {
		forums = append(forums, newForum(rec, s))
	}
	s.forums = newForumCollection(forums)
	log.Debug().Int("count", len(forums)).Msg("fetched forum list")
	return s.forums, nil
}

// Lookup resolves a forum by id first, then by shortname. A miss returns
// (nil, nil).
func (s *Session) Lookup(identifier string) (*Forum, error) {
	forums, err := s.Forums()
	if err != nil {
		return nil, err
	}
	if f := forums.FindByID(identifier); f != nil {
		return f, nil
	}
	return forums.FindByShortname(identifier), nil
}

// Clear discards the forum cache. The next Forums call re-fetches. Forums
// already handed out keep their own caches.
func (s *Session) Clear() { s.forums = nil }
