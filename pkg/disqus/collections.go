package disqus

// ForumCollection is an ordered set of forums with dual-key lookup. A miss
// returns nil, never an error.
type ForumCollection struct {
	items []*Forum
}

func newForumCollection(items []*Forum) *ForumCollection {
	return &ForumCollection{items: items}
}

// All returns the forums in fetch order.
func (c *ForumCollection) All() []*Forum { return c.items }

// Len returns the number of forums.
func (c *ForumCollection) Len() int { return len(c.items) }

// FindByID returns the first forum with the given id, or nil.
func (c *ForumCollection) FindByID(id string) *Forum {
	for _, f := range c.items {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// FindByShortname returns the first forum with the given shortname, or nil.
func (c *ForumCollection) FindByShortname(shortname string) *Forum {
	for _, f := range c.items {
		if f.Shortname == shortname {
			return f
		}
	}
	return nil
}

// ThreadCollection is an ordered set of threads with dual-key lookup.
type ThreadCollection struct {
	items []*Thread
}

func newThreadCollection(items []*Thread) *ThreadCollection {
	return &ThreadCollection{items: items}
}

// All returns the threads in fetch order.
func (c *ThreadCollection) All() []*Thread { return c.items }

// Len returns the number of threads.
func (c *ThreadCollection) Len() int { return len(c.items) }

// FindByID returns the first thread with the given id, or nil.
func (c *ThreadCollection) FindByID(id string) *Thread {
	for _, t := range c.items {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindBySlug returns the first thread with the given slug, or nil.
func (c *ThreadCollection) FindBySlug(slug string) *Thread {
	for _, t := range c.items {
		if t.Slug == slug {
			return t
		}
	}
	return nil
}

func (c *ThreadCollection) append(t *Thread) { c.items = append(c.items, t) }

// PostCollection is an ordered set of posts. Posts have no secondary human
// key, so lookup is by id only.
type PostCollection struct {
	items []*Post
}

func newPostCollection(items []*Post) *PostCollection {
	return &PostCollection{items: items}
}

// All returns the posts in fetch order.
func (c *PostCollection) All() []*Post { return c.items }

// Len returns the number of posts.
func (c *PostCollection) Len() int { return len(c.items) }

// FindByID returns the first post with the given id, or nil.
func (c *PostCollection) FindByID(id string) *Post {
	for _, p := range c.items {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (c *PostCollection) append(p *Post) { c.items = append(c.items, p) }
