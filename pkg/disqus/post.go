package disqus

import "time"

// Post is a single comment within a thread. ParentPost holds the id of the
// post it replies to, empty for top-level comments; the tree shape is always
// derived from that field rather than stored.
type Post struct {
	ID         string
	Message    string
	ParentPost string
	Shown      bool
	CreatedAt  time.Time
	Author     Author

	thread *Thread
}

func newPost(rec PostRecord, thread *Thread) *Post {
	return &Post{
		ID:         rec.ID,
		Message:    rec.Message,
		ParentPost: rec.ParentPost,
		Shown:      rec.Shown,
		CreatedAt:  rec.CreatedAt.Time,
		Author:     newAuthor(rec),
		thread:     thread,
	}
}

// Thread returns the thread this post belongs to.
func (p *Post) Thread() *Thread { return p.thread }

// Parent returns the post this one replies to, or (nil, nil) for a top-level
// post. A parent id missing from the thread's collection (posts beyond the
// fetched page, for instance) also resolves to (nil, nil).
func (p *Post) Parent() (*Post, error) { return p.thread.ParentOf(p) }

// Children returns the direct replies to this post.
func (p *Post) Children() ([]*Post, error) { return p.thread.ChildrenOf(p) }
