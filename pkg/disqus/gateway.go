package disqus

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeFormat is the UTC timestamp layout used on the wire.
const TimeFormat = "2006-01-02T15:04"

// Gateway captures the remote API operations the entity graph needs.
// Implementations return either a decoded payload or an error carrying the
// service's failure message; they never retry.
type Gateway interface {
	// ForumList returns all forums owned by the user key.
	ForumList(userKey string) ([]ForumRecord, error)

	// ForumKey resolves the forum-scoped key for a forum.
	ForumKey(userKey, forumID string) (string, error)

	// ThreadList returns all threads in the forum.
	ThreadList(forumKey string) ([]ThreadRecord, error)

	// ThreadByIdentifier finds or creates a thread keyed by a caller-supplied
	// identifier. The created flag reports whether this call created it; the
	// title only takes effect on creation.
	ThreadByIdentifier(forumKey, identifier, title string) (ThreadRecord, bool, error)

	// ThreadByURL finds the thread associated with a URL. A nil record with a
	// nil error means no thread is associated with the URL.
	ThreadByURL(forumKey, url string) (*ThreadRecord, error)

	// PostList returns all posts in the thread.
	PostList(forumKey, threadID string) ([]PostRecord, error)

	// CreatePost creates a post in the thread, bypassing spam and ban checks.
	CreatePost(forumKey, threadID string, draft PostDraft) (PostRecord, error)

	// UpdateThread pushes thread attribute changes; unset fields are left alone.
	UpdateThread(forumKey, threadID string, update ThreadUpdate) error

	// PostCounts returns visible/total post counts per thread id.
	PostCounts(forumKey string, threadIDs []string) (map[string]PostCount, error)
}

// ForumRecord is the wire representation of a forum.
type ForumRecord struct {
	ID        string `json:"id"`
	Shortname string `json:"shortname"`
	Name      string `json:"name"`
}

// ThreadRecord is the wire representation of a thread.
type ThreadRecord struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	AllowComments bool      `json:"allow_comments"`
	Hidden        bool      `json:"hidden"`
	CreatedAt     Timestamp `json:"created_at"`
}

// PostRecord is the wire representation of a post. Exactly one of Author and
// AnonymousAuthor is populated, selected by IsAnonymous.
type PostRecord struct {
	ID              string                 `json:"id"`
	Message         string                 `json:"message"`
	ParentPost      string                 `json:"parent_post"`
	Shown           bool                   `json:"shown"`
	CreatedAt       Timestamp              `json:"created_at"`
	IsAnonymous     bool                   `json:"is_anonymous"`
	Author          *AuthorRecord          `json:"author,omitempty"`
	AnonymousAuthor *AnonymousAuthorRecord `json:"anonymous_author,omitempty"`
}

// AuthorRecord is the wire representation of a registered author.
type AuthorRecord struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
	EmailHash   string `json:"email_hash"`
	HasAvatar   bool   `json:"has_avatar"`
}

// AnonymousAuthorRecord is the wire representation of an anonymous author.
type AnonymousAuthorRecord struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	EmailHash string `json:"email_hash"`
}

// PostDraft holds the inputs for creating a post. Message, AuthorName and
// AuthorEmail are required by the service; the rest are optional.
type PostDraft struct {
	Message     string
	AuthorName  string
	AuthorEmail string
	AuthorURL   string
	ParentPost  string
	IPAddress   string
	CreatedAt   time.Time
}

// ThreadUpdate holds the attribute changes for an update-thread call. Empty
// strings and a nil AllowComments mean "leave unchanged".
type ThreadUpdate struct {
	Title         string
	Slug          string
	AllowComments *bool
}

// PostCount reports how many posts a thread has. Visible excludes posts held
// back by moderation or spam filtering.
type PostCount struct {
	Visible int
	Total   int
}

// Timestamp wraps time.Time with the wire's minute-resolution UTC layout.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts the wire layout, with or without seconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(TimeFormat, s)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
	}
	t.Time = parsed.UTC()
	return nil
}

// MarshalJSON emits the wire layout in UTC.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(TimeFormat))
}
