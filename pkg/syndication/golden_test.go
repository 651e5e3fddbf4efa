package syndication

import (
	"testing"
	"time"

	"github.com/feedsmith/feedsmith/pkg/testutil"
)

// goldenFeed builds the fixed feed every golden document is rendered from.
// All items carry a pubdate so the output is fully deterministic.
func goldenFeed(t *testing.T, format Format) *Feed {
	t.Helper()

	feed, err := New(format, Options{
		Title:       "Feedsmith Weekly",
		Link:        "http://example.com/",
		Description: "What changed this week",
		Language:    "en",
		AuthorName:  "Jane Doe",
		AuthorEmail: "jane@example.com",
		AuthorLink:  "http://example.com/jane",
		Subtitle:    "Weekly notes",
		Categories:  []string{"golang"},
		FeedURL:     "http://example.com/feed",
		Copyright:   "Copyright 2024",
		TTL:         60,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	items := []Item{
		{
			Title:       "First post",
			Link:        "http://example.com/posts/first",
			Description: "It begins.",
			AuthorName:  "Jane Doe",
			AuthorEmail: "jane@example.com",
			PubDate:     time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC),
			Comments:    "http://example.com/posts/first#comments",
			UniqueID:    "urn:post:1",
			Categories:  []string{"intro"},
		},
		{
			Title:       "Second post",
			Link:        "http://example.com/posts/second#body",
			Description: "More words.",
			PubDate:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Enclosure:   NewEnclosure("http://example.com/a.mp3", "123", "audio/mpeg"),
		},
	}
	for _, item := range items {
		if err := feed.AddItem(item); err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
	}
	return feed
}

func TestGoldenDocuments(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		golden string
	}{
		{name: "rss 0.91", format: RSS091, golden: "testdata/rss091.golden"},
		{name: "rss 2.0", format: RSS20, golden: "testdata/rss2.golden"},
		{name: "atom 1.0", format: Atom10, golden: "testdata/atom.golden"},
		{name: "json feed 1.1", format: JSONFeed, golden: "testdata/jsonfeed.golden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := goldenFeed(t, tt.format).WriteString("utf-8")
			if err != nil {
				t.Fatalf("WriteString() error = %v", err)
			}
			testutil.CompareGolden(t, tt.golden, s)
		})
	}
}
