package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// ForumsCommand returns the forums command
func ForumsCommand() *cli.Command {
	return &cli.Command{
		Name:   "forums",
		Usage:  "List the forums the configured user key owns",
		Action: runForumsList,
	}
}

func runForumsList(c *cli.Context) error {
	session, err := newSession(c)
	if err != nil {
		return err
	}

	forums, err := session.Forums()
	if err != nil {
		return fmt.Errorf("failed to list forums: %w", err)
	}

	for _, f := range forums.All() {
		fmt.Printf("%s\t%s\t%s\n", f.ID, f.Shortname, f.Name)
	}
	return nil
}
