package disqus

// Author is the value object attached to a post. For anonymous posts only
// Name, URL and EmailHash can be set; ID, Username and HasAvatar are
// meaningful only when IsAnonymous is false.
type Author struct {
	ID          string
	Username    string
	Name        string
	URL         string
	EmailHash   string
	HasAvatar   bool
	IsAnonymous bool
}

// newAuthor picks the author branch once, at decode time, from the post
// payload's is_anonymous flag. On the registered branch the display name
// wins over the username when both are present.
func newAuthor(rec PostRecord) Author {
	if rec.IsAnonymous {
		if rec.AnonymousAuthor == nil {
			return Author{IsAnonymous: true}
		}
		return Author{
			Name:        rec.AnonymousAuthor.Name,
			URL:         rec.AnonymousAuthor.URL,
			EmailHash:   rec.AnonymousAuthor.EmailHash,
			IsAnonymous: true,
		}
	}
	if rec.Author == nil {
		return Author{}
	}
	name := rec.Author.DisplayName
	if name == "" {
		name = rec.Author.Username
	}
	return Author{
		ID:        rec.Author.ID,
		Username:  rec.Author.Username,
		Name:      name,
		URL:       rec.Author.URL,
		EmailHash: rec.Author.EmailHash,
		HasAvatar: rec.Author.HasAvatar,
	}
}
