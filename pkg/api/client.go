// Package api talks to the forum service over HTTP. It is useful on its own:
// every method maps to one endpoint and takes the keys explicitly, so it can
// be used without building the disqus entity graph on top.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/disqussion/pkg/disqus"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "http://disqus.com/api"

// Client is an HTTP implementation of disqus.Gateway. Reads are GET requests
// with query-string parameters, writes are form-encoded POSTs; both return a
// {succeeded, code, message} JSON envelope.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ disqus.Gateway = (*Client)(nil)

// NewClient creates a client for the given base URL. An empty baseURL means
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(1*time.Second), 5),
	}
}

// envelope is the wire wrapper around every response. On failure, message
// carries the service's error text instead of the payload.
type envelope struct {
	Succeeded bool            `json:"succeeded"`
	Code      string          `json:"code"`
	Message   json.RawMessage `json:"message"`
}

func (c *Client) get(method string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestURL := fmt.Sprintf("%s/%s/?%s", c.baseURL, method, params.Encode())
	log.Debug().Str("endpoint", method).Msg("api GET")

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s request: %w", method, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(method, resp)
}

func (c *Client) post(method string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestURL := fmt.Sprintf("%s/%s/", c.baseURL, method)
	log.Debug().Str("endpoint", method).Msg("api POST")

	resp, err := c.httpClient.PostForm(requestURL, params)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s request: %w", method, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(method, resp)
}

func decodeEnvelope(method string, resp *http.Response) (json.RawMessage, error) {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s request failed with status %d: %s", method, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", method, err)
	}

	if !env.Succeeded {
		var message string
		if err := json.Unmarshal(env.Message, &message); err != nil || message == "" {
			message = env.Code
		}
		return nil, fmt.Errorf("%s failed: %s", method, message)
	}

	return env.Message, nil
}

// ForumList retrieves the forums the user owns.
func (c *Client) ForumList(userKey string) ([]disqus.ForumRecord, error) {
	msg, err := c.get("get_forum_list", url.Values{"user_api_key": {userKey}})
	if err != nil {
		return nil, err
	}

	var records []disqus.ForumRecord
	if err := json.Unmarshal(msg, &records); err != nil {
		return nil, fmt.Errorf("failed to decode forum list: %w", err)
	}
	return records, nil
}

// ForumKey retrieves the forum-scoped key needed by most other calls.
func (c *Client) ForumKey(userKey, forumID string) (string, error) {
	msg, err := c.get("get_forum_api_key", url.Values{
		"user_api_key": {userKey},
		"forum_id":     {forumID},
	})
	if err != nil {
		return "", err
	}

	var key string
	if err := json.Unmarshal(msg, &key); err != nil {
		return "", fmt.Errorf("failed to decode forum key: %w", err)
	}
	return key, nil
}

// ThreadList retrieves the threads the forum owns.
func (c *Client) ThreadList(forumKey string) ([]disqus.ThreadRecord, error) {
	msg, err := c.get("get_thread_list", url.Values{"forum_api_key": {forumKey}})
	if err != nil {
		return nil, err
	}

	var records []disqus.ThreadRecord
	if err := json.Unmarshal(msg, &records); err != nil {
		return nil, fmt.Errorf("failed to decode thread list: %w", err)
	}
	return records, nil
}

// ThreadByIdentifier finds or creates a thread keyed by an arbitrary
// identifying string. The identifier decouples threads from their URLs,
// which do not uniquely identify a resource.
func (c *Client) ThreadByIdentifier(forumKey, identifier, title string) (disqus.ThreadRecord, bool, error) {
	msg, err := c.post("thread_by_identifier", url.Values{
		"forum_api_key": {forumKey},
		"identifier":    {identifier},
		"title":         {title},
	})
	if err != nil {
		return disqus.ThreadRecord{}, false, err
	}

	var payload struct {
		Thread  disqus.ThreadRecord `json:"thread"`
		Created bool                `json:"created"`
	}
	if err := json.Unmarshal(msg, &payload); err != nil {
		return disqus.ThreadRecord{}, false, fmt.Errorf("failed to decode thread: %w", err)
	}
	return payload.Thread, payload.Created, nil
}

// ThreadByURL retrieves the thread associated with a URL, scoped to the
// given forum. The service returns null when no thread matches.
func (c *Client) ThreadByURL(forumKey, threadURL string) (*disqus.ThreadRecord, error) {
	msg, err := c.get("get_thread_by_url", url.Values{
		"forum_api_key": {forumKey},
		"url":           {threadURL},
	})
	if err != nil {
		return nil, err
	}

	var record *disqus.ThreadRecord
	if err := json.Unmarshal(msg, &record); err != nil {
		return nil, fmt.Errorf("failed to decode thread: %w", err)
	}
	return record, nil
}

// PostList retrieves the posts in a thread.
func (c *Client) PostList(forumKey, threadID string) ([]disqus.PostRecord, error) {
	msg, err := c.get("get_thread_posts", url.Values{
		"forum_api_key": {forumKey},
		"thread_id":     {threadID},
	})
	if err != nil {
		return nil, err
	}

	var records []disqus.PostRecord
	if err := json.Unmarshal(msg, &records); err != nil {
		return nil, fmt.Errorf("failed to decode post list: %w", err)
	}
	return records, nil
}

// CreatePost creates a post in a thread. The service skips its spam filters
// and ban list for this call, to support automated comment imports.
// Optional draft fields are omitted from the request when unset.
func (c *Client) CreatePost(forumKey, threadID string, draft disqus.PostDraft) (disqus.PostRecord, error) {
	params := url.Values{
		"forum_api_key": {forumKey},
		"thread_id":     {threadID},
		"message":       {draft.Message},
		"author_name":   {draft.AuthorName},
		"author_email":  {draft.AuthorEmail},
	}
	if draft.AuthorURL != "" {
		params.Set("author_url", draft.AuthorURL)
	}
	if draft.ParentPost != "" {
		params.Set("parent_post", draft.ParentPost)
	}
	if draft.IPAddress != "" {
		params.Set("ip_address", draft.IPAddress)
	}
	if !draft.CreatedAt.IsZero() {
		params.Set("created_at", draft.CreatedAt.UTC().Format(disqus.TimeFormat))
	}

	msg, err := c.post("create_post", params)
	if err != nil {
		return disqus.PostRecord{}, err
	}

	var record disqus.PostRecord
	if err := json.Unmarshal(msg, &record); err != nil {
		return disqus.PostRecord{}, fmt.Errorf("failed to decode post: %w", err)
	}
	return record, nil
}

// UpdateThread pushes thread attribute changes. Unset fields are left out of
// the request and remain unchanged remotely. The success payload is an empty
// acknowledgment.
func (c *Client) UpdateThread(forumKey, threadID string, update disqus.ThreadUpdate) error {
	params := url.Values{
		"forum_api_key": {forumKey},
		"thread_id":     {threadID},
	}
	if update.Title != "" {
		params.Set("title", update.Title)
	}
	if update.Slug != "" {
		params.Set("slug", update.Slug)
	}
	if update.AllowComments != nil {
		params.Set("allow_comments", strconv.FormatBool(*update.AllowComments))
	}

	_, err := c.post("update_thread", params)
	return err
}

// PostCounts retrieves visible and total post counts for a list of thread
// ids. The wire payload maps each id to a [visible, total] pair.
func (c *Client) PostCounts(forumKey string, threadIDs []string) (map[string]disqus.PostCount, error) {
	msg, err := c.get("get_num_posts", url.Values{
		"forum_api_key": {forumKey},
		"thread_ids":    {strings.Join(threadIDs, ",")},
	})
	if err != nil {
		return nil, err
	}

	var pairs map[string][]int
	if err := json.Unmarshal(msg, &pairs); err != nil {
		return nil, fmt.Errorf("failed to decode post counts: %w", err)
	}

	counts := make(map[string]disqus.PostCount, len(pairs))
	for id, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("unexpected post count shape for thread %s", id)
		}
		counts[id] = disqus.PostCount{Visible: pair[0], Total: pair[1]}
	}
	return counts, nil
}
