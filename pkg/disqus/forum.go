package disqus

import (
	"github.com/rs/zerolog/log"
)

// Forum is a top-level commenting domain, usually one website. It holds a
// lazily resolved forum-scoped key and the lazily fetched list of threads.
//
// Forums are created by decoding gateway responses, never constructed ad hoc.
type Forum struct {
	ID        string
	Shortname string
	Name      string

	// session routes gateway calls only; it does not own the forum.
	session  *Session
	forumKey string
	threads  *ThreadCollection
}

func newForum(rec ForumRecord, session *Session) *Forum {
	return &Forum{
		ID:        rec.ID,
		Shortname: rec.Shortname,
		Name:      rec.Name,
		session:   session,
	}
}

// ForumKey resolves and memoizes the forum-scoped key. Most thread and post
// operations require it.
func (f *Forum) ForumKey() (string, error) {
	if f.forumKey != "" {
		return f.forumKey, nil
	}
	if err := f.session.checkConfig(); err != nil {
		return "", err
	}
	key, err := f.session.gateway.ForumKey(f.session.userKey, f.ID)
	if err != nil {
		return "", &RemoteFetchError{Op: "forum key", Err: err}
	}
	f.forumKey = key
	return key, nil
}

// Threads returns the forum's threads, fetching them on first call.
func (f *Forum) Threads() (*ThreadCollection, error) {
	if f.threads != nil {
		return f.threads, nil
	}
	key, err := f.ForumKey()
	if err != nil {
		return nil, err
	}
	records, err := f.session.gateway.ThreadList(key)
	if err != nil {
		return nil, &RemoteFetchError{Op: "thread list", Err: err}
	}
	threads := make([]*Thread, 0, len(records))
	for _, rec := range records {
		threads = append(threads, newThread(rec, f))
	}
	f.threads = newThreadCollection(threads)
	log.Debug().Str("forum", f.ID).Int("count", len(threads)).Msg("fetched thread list")
	return f.threads, nil
}

// Lookup resolves a thread by id first, then by slug. A miss returns
// (nil, nil).
func (f *Forum) Lookup(identifier string) (*Thread, error) {
	threads, err := f.Threads()
	if err != nil {
		return nil, err
	}
	if t := threads.FindByID(identifier); t != nil {
		return t, nil
	}
	return threads.FindBySlug(identifier), nil
}

// CreateThread finds or creates a thread keyed by an identifier of the
// caller's choosing (the page URL works well). The title only takes effect
// when the thread is actually created; repeating the call with a different
// title returns the existing thread unchanged.
//
// On success the thread is appended to the local cache if one exists; the
// cache is not invalidated or re-fetched.
func (f *Forum) CreateThread(identifier, title string) (*Thread, error) {
	key, err := f.ForumKey()
	if err != nil {
		return nil, err
	}
	rec, created, err := f.session.gateway.ThreadByIdentifier(key, identifier, title)
	if err != nil {
		return nil, &RemoteOperationError{Op: "create thread", Err: err}
	}
	log.Debug().Str("forum", f.ID).Str("thread", rec.ID).Bool("created", created).Msg("thread by identifier")
	if f.threads != nil {
		if existing := f.threads.FindByID(rec.ID); existing != nil {
			return existing, nil
		}
	}
	thread := newThread(rec, f)
	if f.threads != nil {
		f.threads.append(thread)
	}
	return thread, nil
}

// FindThreadByUrl resolves the thread associated with a URL in a single
// gateway call, without touching the thread cache. URL-to-thread mapping is
// neither unique nor stable, so prefer CreateThread with an identifier; this
// exists mainly for threads that predate identifier-based creation. A miss
// returns (nil, nil).
func (f *Forum) FindThreadByUrl(url string) (*Thread, error) {
	key, err := f.ForumKey()
	if err != nil {
		return nil, err
	}
	rec, err := f.session.gateway.ThreadByURL(key, url)
	if err != nil {
		return nil, &RemoteFetchError{Op: "thread by url", Err: err}
	}
	if rec == nil {
		return nil, nil
	}
	return newThread(*rec, f), nil
}

// PostCounts returns visible and total post counts for the given thread ids.
// The two differ when moderation or spam filtering holds posts back.
func (f *Forum) PostCounts(threadIDs []string) (map[string]PostCount, error) {
	key, err := f.ForumKey()
	if err != nil {
		return nil, err
	}
	counts, err := f.session.gateway.PostCounts(key, threadIDs)
	if err != nil {
		return nil, &RemoteFetchError{Op: "post counts", Err: err}
	}
	return counts, nil
}

// Clear discards the thread cache. The forum key keeps its own cache; see
// ClearKey.
func (f *Forum) Clear() { f.threads = nil }

// ClearKey discards the memoized forum key so the next use re-resolves it.
func (f *Forum) ClearKey() { f.forumKey = "" }

// Session returns the session this forum belongs to.
func (f *Forum) Session() *Session { return f.session }
