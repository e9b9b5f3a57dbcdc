package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeBills(t *testing.T) {
	bills := []FeedBill{
		{ID: "1", Title: "A"},
		{ID: "2", Title: "B"},
		{ID: "1", Title: "A"},
		{ID: "3", Title: "C"},
		{ID: "2", Title: "B"},
	}
	out := DedupeBills(bills)
	assert.Equal(t, []FeedBill{
		{ID: "1", Title: "A"},
		{ID: "2", Title: "B"},
		{ID: "3", Title: "C"},
	}, out)
}

func TestBuildFeed(t *testing.T) {
	names := []string{"alice", "bob"}
	commented := map[string][]FeedBill{
		"alice": {{ID: "1", Title: "A"}, {ID: "1", Title: "A"}},
	}
	liked := map[string][]FeedBill{
		"bob": {{ID: "2", Title: "B"}},
	}

	feed := BuildFeed(names, commented, liked)
	require.Len(t, feed, 4)

	// Two entries per followee, in follow order: commented then liked.
	assert.Equal(t, "alice", feed[0].UserName)
	assert.Equal(t, "commented", feed[0].Kind)
	assert.Equal(t, []FeedBill{{ID: "1", Title: "A"}}, feed[0].Bills)

	assert.Equal(t, "alice", feed[1].UserName)
	assert.Equal(t, "liked", feed[1].Kind)
	assert.Empty(t, feed[1].Bills)

	assert.Equal(t, "bob", feed[2].UserName)
	assert.Equal(t, "commented", feed[2].Kind)
	assert.Empty(t, feed[2].Bills)

	assert.Equal(t, "bob", feed[3].UserName)
	assert.Equal(t, "liked", feed[3].Kind)
	assert.Equal(t, []FeedBill{{ID: "2", Title: "B"}}, feed[3].Bills)
}

func TestBuildFeedEmpty(t *testing.T) {
	assert.Empty(t, BuildFeed(nil, nil, nil))
}
