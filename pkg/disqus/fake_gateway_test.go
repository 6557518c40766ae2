package disqus

import "fmt"

// fakeGateway counts calls per operation and delegates to injectable
// functions, so tests can assert memoization and failure behaviour.
type fakeGateway struct {
	calls map[string]int

	lastUserKey  string
	lastForumKey string

	forumList          func() ([]ForumRecord, error)
	forumKey           func(forumID string) (string, error)
	threadList         func() ([]ThreadRecord, error)
	threadByIdentifier func(identifier, title string) (ThreadRecord, bool, error)
	threadByURL        func(url string) (*ThreadRecord, error)
	postList           func(threadID string) ([]PostRecord, error)
	createPost         func(threadID string, draft PostDraft) (PostRecord, error)
	updateThread       func(threadID string, update ThreadUpdate) error
	postCounts         func(threadIDs []string) (map[string]PostCount, error)
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{calls: map[string]int{}}
}

func (g *fakeGateway) ForumList(userKey string) ([]ForumRecord, error) {
	g.calls["forum_list"]++
	g.lastUserKey = userKey
	if g.forumList == nil {
		return nil, nil
	}
	return g.forumList()
}

func (g *fakeGateway) ForumKey(userKey, forumID string) (string, error) {
	g.calls["forum_key"]++
	g.lastUserKey = userKey
	if g.forumKey == nil {
		return "fk-" + forumID, nil
	}
	return g.forumKey(forumID)
}

func (g *fakeGateway) ThreadList(forumKey string) ([]ThreadRecord, error) {
	g.calls["thread_list"]++
	g.lastForumKey = forumKey
	if g.threadList == nil {
		return nil, nil
	}
	return g.threadList()
}

func (g *fakeGateway) ThreadByIdentifier(forumKey, identifier, title string) (ThreadRecord, bool, error) {
	g.calls["thread_by_identifier"]++
	g.lastForumKey = forumKey
	if g.threadByIdentifier == nil {
		return ThreadRecord{}, false, fmt.Errorf("thread_by_identifier not stubbed")
	}
	return g.threadByIdentifier(identifier, title)
}

func (g *fakeGateway) ThreadByURL(forumKey, url string) (*ThreadRecord, error) {
	g.calls["thread_by_url"]++
	g.lastForumKey = forumKey
	if g.threadByURL == nil {
		return nil, nil
	}
	return g.threadByURL(url)
}

func (g *fakeGateway) PostList(forumKey, threadID string) ([]PostRecord, error) {
	g.calls["post_list"]++
	g.lastForumKey = forumKey
	if g.postList == nil {
		return nil, nil
	}
	return g.postList(threadID)
}

func (g *fakeGateway) CreatePost(forumKey, threadID string, draft PostDraft) (PostRecord, error) {
	g.calls["create_post"]++
	g.lastForumKey = forumKey
	if g.createPost == nil {
		return PostRecord{}, fmt.Errorf("create_post not stubbed")
	}
	return g.createPost(threadID, draft)
}

func (g *fakeGateway) UpdateThread(forumKey, threadID string, update ThreadUpdate) error {
	g.calls["update_thread"]++
	g.lastForumKey = forumKey
	if g.updateThread == nil {
		return nil
	}
	return g.updateThread(threadID, update)
}

func (g *fakeGateway) PostCounts(forumKey string, threadIDs []string) (map[string]PostCount, error) {
	g.calls["post_counts"]++
	g.lastForumKey = forumKey
	if g.postCounts == nil {
		return nil, nil
	}
	return g.postCounts(threadIDs)
}

// twoForums is the standard fixture: distinct forums whose id and shortname
// collide on the literal "42".
func twoForums() []ForumRecord {
	return []ForumRecord{
		{ID: "42", Shortname: "blowmage", Name: "Blowmage"},
		{ID: "77", Shortname: "42", Name: "The Answer"},
	}
}
