package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

// ThreadsCommand returns the threads command
func ThreadsCommand() *cli.Command {
	return &cli.Command{
		Name:      "threads",
		Usage:     "Work with a forum's threads",
		ArgsUsage: "<forum>",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List the forum's threads",
				ArgsUsage: "<forum>",
				Action:    runThreadsList,
			},
			{
				Name:      "create",
				Usage:     "Find or create a thread by identifier",
				ArgsUsage: "<forum>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "identifier",
						Usage: "Identifier of your choosing (the page URL works well); a UUID is generated when omitted",
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Thread title, applied only when the thread is created",
						Required: true,
					},
				},
				Action: runThreadsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a thread's title, slug or comment setting",
				ArgsUsage: "<forum> <thread>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "slug", Usage: "New slug"},
					&cli.BoolFlag{Name: "allow-comments", Usage: "Open the thread to new comments", Value: true},
				},
				Action: runThreadsUpdate,
			},
			{
				Name:      "counts",
				Usage:     "Show visible/total post counts for threads",
				ArgsUsage: "<forum> <thread-id>...",
				Action:    runThreadsCounts,
			},
			{
				Name:      "find-url",
				Usage:     "Find the thread associated with a URL",
				ArgsUsage: "<forum> <url>",
				Action:    runThreadsFindURL,
			},
		},
	}
}

func runThreadsList(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: threads list <forum>")
	}

	forum, err := lookupForum(c, c.Args().Get(0))
	if err != nil {
		return err
	}

	threads, err := forum.Threads()
	if err != nil {
		return fmt.Errorf("failed to list threads: %w", err)
	}

	for _, t := range threads.All() {
		visibility := "visible"
		if !t.Visible() {
			visibility = "hidden"
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", t.ID, t.Slug, visibility, t.Title)
	}
	return nil
}

func runThreadsCreate(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: threads create <forum> --title TITLE")
	}

	forum, err := lookupForum(c, c.Args().Get(0))
	if err != nil {
		return err
	}

	identifier := c.String("identifier")
	if identifier == "" {
		identifier = uuid.New().String()
	}

	thread, err := forum.CreateThread(identifier, c.String("title"))
	if err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}

	fmt.Printf("%s\t%s\t%s\n", thread.ID, thread.Slug, thread.Title)
	return nil
}

func runThreadsUpdate(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: threads update <forum> <thread>")
	}

	thread, err := lookupThread(c, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	if c.IsSet("title") {
		thread.Title = c.String("title")
	}
	if c.IsSet("slug") {
		thread.Slug = c.String("slug")
	}
	if c.IsSet("allow-comments") {
		thread.AllowComments = c.Bool("allow-comments")
	}

	if err := thread.Update(); err != nil {
		return fmt.Errorf("failed to update thread: %w", err)
	}

	fmt.Println("Thread updated")
	return nil
}

func runThreadsCounts(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: threads counts <forum> <thread-id>...")
	}

	forum, err := lookupForum(c, c.Args().Get(0))
	if err != nil {
		return err
	}

	ids := c.Args().Slice()[1:]
	counts, err := forum.PostCounts(ids)
	if err != nil {
		return fmt.Errorf("failed to fetch post counts: %w", err)
	}

	for _, id := range ids {
		count, ok := counts[id]
		if !ok {
			fmt.Printf("%s\t-\n", id)
			continue
		}
		fmt.Printf("%s\t%d visible / %d total\n", id, count.Visible, count.Total)
	}
	return nil
}

func runThreadsFindURL(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: threads find-url <forum> <url>")
	}

	forum, err := lookupForum(c, c.Args().Get(0))
	if err != nil {
		return err
	}

	url := strings.TrimSpace(c.Args().Get(1))
	thread, err := forum.FindThreadByUrl(url)
	if err != nil {
		return fmt.Errorf("failed to find thread: %w", err)
	}
	if thread == nil {
		return fmt.Errorf("no thread associated with %s", url)
	}

	fmt.Printf("%s\t%s\t%s\n", thread.ID, thread.Slug, thread.Title)
	return nil
}
