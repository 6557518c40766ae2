package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/disqussion/internal/config"
	"github.com/disqussion/pkg/api"
	"github.com/disqussion/pkg/disqus"
)

// newSession builds a Session wired to the HTTP gateway from the CLI
// context's configuration.
func newSession(c *cli.Context) (*disqus.Session, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return disqus.NewSession(cfg.API.UserKey, api.NewClient(cfg.API.BaseURL)), nil
}

// lookupForum resolves a forum argument by id or shortname.
func lookupForum(c *cli.Context, identifier string) (*disqus.Forum, error) {
	session, err := newSession(c)
	if err != nil {
		return nil, err
	}

	forum, err := session.Lookup(identifier)
	if err != nil {
		return nil, err
	}
	if forum == nil {
		return nil, fmt.Errorf("no forum matches %q", identifier)
	}
	return forum, nil
}

// lookupThread resolves a thread argument by id or slug within a forum.
func lookupThread(c *cli.Context, forumID, threadID string) (*disqus.Thread, error) {
	forum, err := lookupForum(c, forumID)
	if err != nil {
		return nil, err
	}

	thread, err := forum.Lookup(threadID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, fmt.Errorf("no thread matches %q in forum %q", threadID, forumID)
	}
	return thread, nil
}
