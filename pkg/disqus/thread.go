package disqus

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Thread is a commentable page or topic within a forum. Its post collection
// is the whole comment tree for the page, flattened; parent/child structure
// is derived from each post's ParentPost field.
type Thread struct {
	ID            string
	Title         string
	Slug          string
	AllowComments bool
	Hidden        bool
	CreatedAt     time.Time

	// forum routes gateway calls only; it does not own the thread.
	forum *Forum
	posts *PostCollection
}

func newThread(rec ThreadRecord, forum *Forum) *Thread {
	return &Thread{
		ID:            rec.ID,
		Title:         rec.Title,
		Slug:          rec.Slug,
		AllowComments: rec.AllowComments,
		Hidden:        rec.Hidden,
		CreatedAt:     rec.CreatedAt.Time,
		forum:         forum,
	}
}

// Visible reports whether the thread is not hidden.
func (t *Thread) Visible() bool { return !t.Hidden }

// Forum returns the forum this thread belongs to.
func (t *Thread) Forum() *Forum { return t.forum }

// Posts returns the thread's posts, fetching them on first call.
func (t *Thread) Posts() (*PostCollection, error) {
	if t.posts != nil {
		return t.posts, nil
	}
	key, err := t.forum.ForumKey()
	if err != nil {
		return nil, err
	}
	records, err := t.forum.session.gateway.PostList(key, t.ID)
	if err != nil {
		return nil, &RemoteFetchError{Op: "post list", Err: err}
	}
	posts := make([]*Post, 0, len(records))
	for _, rec := range records {
		posts = append(posts, newPost(rec, t))
	}
	t.posts = newPostCollection(posts)
	log.Debug().Str("thread", t.ID).Int("count", len(posts)).Msg("fetched post list")
	return t.posts, nil
}

// Lookup returns the post with the given id, or (nil, nil) on a miss.
func (t *Thread) Lookup(id string) (*Post, error) {
	posts, err := t.Posts()
	if err != nil {
		return nil, err
	}
	return posts.FindByID(id), nil
}

// ParentPosts returns the top-level posts, in fetch order. The view is
// recomputed from the current cache on every call.
func (t *Thread) ParentPosts() ([]*Post, error) {
	posts, err := t.Posts()
	if err != nil {
		return nil, err
	}
	var parents []*Post
	for _, p := range posts.All() {
		if p.ParentPost == "" {
			parents = append(parents, p)
		}
	}
	return parents, nil
}

// ParentOf returns the parent of a post, or (nil, nil) for a top-level post
// or a parent id not present in the collection.
func (t *Thread) ParentOf(p *Post) (*Post, error) {
	if p.ParentPost == "" {
		return nil, nil
	}
	return t.Lookup(p.ParentPost)
}

// ChildrenOf returns the direct replies to a post, in fetch order. Comment
// counts per page are small, so this is a plain scan.
func (t *Thread) ChildrenOf(p *Post) ([]*Post, error) {
	posts, err := t.Posts()
	if err != nil {
		return nil, err
	}
	var children []*Post
	for _, c := range posts.All() {
		if c.ParentPost == p.ID {
			children = append(children, c)
		}
	}
	return children, nil
}

// CreatePost creates a post in this thread. The call bypasses the service's
// spam filters and ban list, which is what makes bulk comment imports
// possible. On success the post is appended to the local cache if one
// exists; on failure no cache is touched.
func (t *Thread) CreatePost(draft PostDraft) (*Post, error) {
	key, err := t.forum.ForumKey()
	if err != nil {
		return nil, err
	}
	rec, err := t.forum.session.gateway.CreatePost(key, t.ID, draft)
	if err != nil {
		return nil, &RemoteOperationError{Op: "create post", Err: err}
	}
	log.Debug().Str("thread", t.ID).Str("post", rec.ID).Msg("created post")
	post := newPost(rec, t)
	if t.posts != nil {
		t.posts.append(post)
	}
	return post, nil
}

// Update pushes the thread's current Title, Slug and AllowComments to the
// service in one call. The service acknowledges without a payload; whether
// it applied every field atomically is not observable here.
func (t *Thread) Update() error {
	key, err := t.forum.ForumKey()
	if err != nil {
		return err
	}
	allow := t.AllowComments
	update := ThreadUpdate{Title: t.Title, Slug: t.Slug, AllowComments: &allow}
	if err := t.forum.session.gateway.UpdateThread(key, t.ID, update); err != nil {
		return &RemoteOperationError{Op: "update thread", Err: err}
	}
	return nil
}

// Clear discards the post cache. The next Posts call re-fetches.
func (t *Thread) Clear() { t.posts = nil }
