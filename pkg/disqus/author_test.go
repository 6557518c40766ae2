package disqus

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePost(t *testing.T, payload string) PostRecord {
	t.Helper()
	var rec PostRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))
	return rec
}

func TestAnonymousAuthorDecode(t *testing.T) {
	rec := decodePost(t, `{
		"id": "p1",
		"message": "first!",
		"parent_post": null,
		"shown": true,
		"created_at": "2009-03-30T15:41",
		"is_anonymous": true,
		"anonymous_author": {
			"name": "Just some guy",
			"url": "http://someguy.example/",
			"email_hash": "556756f8a"
		}
	}`)

	author := newAuthor(rec)
	want := Author{
		Name:        "Just some guy",
		URL:         "http://someguy.example/",
		EmailHash:   "556756f8a",
		IsAnonymous: true,
	}
	if diff := cmp.Diff(want, author); diff != "" {
		t.Fatalf("author mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, author.ID)
	assert.Empty(t, author.Username)
}

func TestRegisteredAuthorPrefersDisplayName(t *testing.T) {
	rec := decodePost(t, `{
		"id": "p1",
		"message": "hi",
		"is_anonymous": false,
		"author": {
			"id": "12345",
			"username": "someguy",
			"display_name": "Some Guy",
			"url": "http://someguy.example/",
			"email_hash": "556756f8a",
			"has_avatar": true
		}
	}`)

	author := newAuthor(rec)
	assert.Equal(t, "Some Guy", author.Name, "display_name wins over username")
	assert.Equal(t, "someguy", author.Username)
	assert.Equal(t, "12345", author.ID)
	assert.True(t, author.HasAvatar)
	assert.False(t, author.IsAnonymous)
}

func TestRegisteredAuthorFallsBackToUsername(t *testing.T) {
	rec := decodePost(t, `{
		"id": "p1",
		"message": "hi",
		"is_anonymous": false,
		"author": {"id": "12345", "username": "someguy"}
	}`)

	author := newAuthor(rec)
	assert.Equal(t, "someguy", author.Name)
}

func TestPostDecodeTimestampAndParent(t *testing.T) {
	rec := decodePost(t, `{
		"id": "p2",
		"message": "reply",
		"parent_post": "p1",
		"shown": false,
		"created_at": "2009-03-30T15:41",
		"is_anonymous": false,
		"author": {"id": "1", "username": "u"}
	}`)

	assert.Equal(t, "p1", rec.ParentPost)
	assert.False(t, rec.Shown)
	assert.Equal(t, time.Date(2009, 3, 30, 15, 41, 0, 0, time.UTC), rec.CreatedAt.Time)
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Timestamp{Time: time.Date(2009, 3, 30, 15, 41, 0, 0, time.UTC)}
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2009-03-30T15:41"`, string(data))

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, ts.Equal(back.Time))
}

func TestTimestampAcceptsSeconds(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2009-03-30T15:41:22"`), &ts))
	assert.Equal(t, 22, ts.Second())
}
