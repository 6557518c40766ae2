package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/disqussion/pkg/disqus"
)

// PostsCommand returns the posts command
func PostsCommand() *cli.Command {
	return &cli.Command{
		Name:  "posts",
		Usage: "Work with a thread's posts",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "Print the thread's comment tree",
				ArgsUsage: "<forum> <thread>",
				Action:    runPostsList,
			},
			{
				Name:      "create",
				Usage:     "Create a post (skips spam filtering; meant for imports)",
				ArgsUsage: "<forum> <thread>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "message", Usage: "Post body", Required: true},
					&cli.StringFlag{Name: "author-name", Usage: "Author's full name", Required: true},
					&cli.StringFlag{Name: "author-email", Usage: "Author's email address", Required: true},
					&cli.StringFlag{Name: "author-url", Usage: "Author's homepage"},
					&cli.StringFlag{Name: "parent", Usage: "Id of the post being replied to"},
					&cli.StringFlag{Name: "ip", Usage: "Author's IP address"},
				},
				Action: runPostsCreate,
			},
		},
	}
}

func runPostsList(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: posts list <forum> <thread>")
	}

	thread, err := lookupThread(c, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	parents, err := thread.ParentPosts()
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	for _, p := range parents {
		if err := printPostTree(thread, p, 0); err != nil {
			return err
		}
	}
	return nil
}

func printPostTree(thread *disqus.Thread, post *disqus.Post, depth int) error {
	indent := strings.Repeat("  ", depth)
	author := post.Author.Name
	if author == "" {
		author = "(unknown)"
	}
	fmt.Printf("%s%s [%s] %s\n", indent, post.ID, author, post.Message)

	children, err := thread.ChildrenOf(post)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := printPostTree(thread, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func runPostsCreate(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: posts create <forum> <thread>")
	}

	thread, err := lookupThread(c, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	post, err := thread.CreatePost(disqus.PostDraft{
		Message:     c.String("message"),
		AuthorName:  c.String("author-name"),
		AuthorEmail: c.String("author-email"),
		AuthorURL:   c.String("author-url"),
		ParentPost:  c.String("parent"),
		IPAddress:   c.String("ip"),
	})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	fmt.Printf("Created post %s\n", post.ID)
	return nil
}
