package syndication

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

// rssDocument is the minimal shape used to verify element nesting in
// rendered RSS output.
type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel struct {
		// The namespaced field must precede Link so the self-referencing
		// atom:link does not shadow the channel link during unmarshal.
		AtomLink struct {
			Rel  string `xml:"rel,attr"`
			Href string `xml:"href,attr"`
		} `xml:"http://www.w3.org/2005/Atom link"`
		Title       string `xml:"title"`
		Link        string `xml:"link"`
		Description string `xml:"description"`
		Items       []struct {
			Title       string `xml:"title"`
			Link        string `xml:"link"`
			Description string `xml:"description"`
		} `xml:"item"`
	} `xml:"channel"`
}

func TestRSS20Document(t *testing.T) {
	feed, err := NewRSS2(Options{Title: "T", Link: "http://x/", Description: "D"})
	if err != nil {
		t.Fatalf("NewRSS2() error = %v", err)
	}
	if err := feed.AddItem(Item{Title: "I", Link: "http://x/i", Description: "ID"}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	s, err := feed.WriteString("utf-8")
	if err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	if !strings.HasPrefix(s, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n") {
		t.Errorf("output missing XML declaration: %q", s)
	}
	if count := strings.Count(s, "<item>"); count != 1 {
		t.Errorf("output has %d <item> blocks, expected 1", count)
	}

	var doc rssDocument
	if err := xml.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatalf("output is not well-formed XML: %v\n%s", err, s)
	}
	if doc.Version != "2.0" {
		t.Errorf("rss version = %q, expected %q", doc.Version, "2.0")
	}
	if doc.Channel.Title != "T" || doc.Channel.Link != "http://x/" || doc.Channel.Description != "D" {
		t.Errorf("channel fields = %+v, expected T / http://x/ / D", doc.Channel)
	}
	if doc.Channel.AtomLink.Rel != "self" {
		t.Errorf("atom:link rel = %q, expected %q", doc.Channel.AtomLink.Rel, "self")
	}
	if len(doc.Channel.Items) != 1 {
		t.Fatalf("parsed %d items, expected 1", len(doc.Channel.Items))
	}
	item := doc.Channel.Items[0]
	if item.Title != "I" || item.Link != "http://x/i" || item.Description != "ID" {
		t.Errorf("item fields = %+v, expected I / http://x/i / ID", item)
	}
}

func TestRSS20ChannelElements(t *testing.T) {
	pubdate := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	feed, err := NewRSS2(Options{
		Title:       "T",
		Link:        "http://x/",
		Description: "D",
		Language:    "en",
		Categories:  []string{"tech", "news"},
		FeedURL:     "http://x/feed",
		Copyright:   "© 2024",
		TTL:         60,
	})
	if err != nil {
		t.Fatalf("NewRSS2() error = %v", err)
	}
	item := validItem()
	item.PubDate = pubdate
	if err := feed.AddItem(item); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	s, err := feed.WriteString("utf-8")
	if err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	for _, expected := range []string{
		`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`,
		`<atom:link rel="self" href="http://x/feed"></atom:link>`,
		"<language>en</language>",
		"<category>tech</category>",
		"<category>news</category>",
		"<copyright>© 2024</copyright>",
		"<lastBuildDate>Wed, 01 May 2024 12:00:00 -0000</lastBuildDate>",
		"<ttl>60</ttl>",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("output missing %q:\n%s", expected, s)
		}
	}
}

func TestRSS20AuthorRendering(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		author   string
		expected string
	}{
		{
			name:     "email and name combined",
			email:    "jane@example.com",
			author:   "Jane",
			expected: "<author>jane@example.com (Jane)</author>",
		},
		{
			name:     "email alone",
			email:    "jane@example.com",
			expected: "<author>jane@example.com</author>",
		},
		{
			name:     "name alone goes to dc:creator",
			author:   "Jane",
			expected: `<dc:creator xmlns:dc="http://purl.org/dc/elements/1.1/">Jane</dc:creator>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := NewRSS2(validOptions())
			if err != nil {
				t.Fatalf("NewRSS2() error = %v", err)
			}
			item := validItem()
			item.AuthorEmail = tt.email
			item.AuthorName = tt.author
			if err := feed.AddItem(item); err != nil {
				t.Fatalf("AddItem() error = %v", err)
			}

			s, err := feed.WriteString("utf-8")
			if err != nil {
				t.Fatalf("WriteString() error = %v", err)
			}
			if !strings.Contains(s, tt.expected) {
				t.Errorf("output missing %q:\n%s", tt.expected, s)
			}
		})
	}
}

func TestRSS20ItemExtras(t *testing.T) {
	feed, err := NewRSS2(validOptions())
	if err != nil {
		t.Fatalf("NewRSS2() error = %v", err)
	}
	err = feed.AddItem(Item{
		Title:       "I",
		Link:        "http://x/i",
		Description: "ID",
		PubDate:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Comments:    "http://x/i/comments",
		UniqueID:    "urn:item:1",
		TTL:         15,
		Enclosure:   NewEnclosure("http://x/a.mp3", "123", "audio/mpeg"),
		Categories:  []string{"podcast"},
	})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	s, err := feed.WriteString("utf-8")
	if err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	for _, expected := range []string{
		"<pubDate>Wed, 01 May 2024 12:00:00 -0000</pubDate>",
		"<comments>http://x/i/comments</comments>",
		"<guid>urn:item:1</guid>",
		"<ttl>15</ttl>",
		`<enclosure url="http://x/a.mp3" length="123" type="audio/mpeg"></enclosure>`,
		"<category>podcast</category>",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("output missing %q:\n%s", expected, s)
		}
	}
}

func TestRSS091SuppressesItemExtras(t *testing.T) {
	feed, err := NewRSS091(validOptions())
	if err != nil {
		t.Fatalf("NewRSS091() error = %v", err)
	}
	err = feed.AddItem(Item{
		Title:       "I",
		Link:        "http://x/i",
		Description: "ID",
		AuthorName:  "Jane",
		AuthorEmail: "jane@example.com",
		PubDate:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UniqueID:    "urn:item:1",
		TTL:         15,
		Enclosure:   NewEnclosure("http://x/a.mp3", "123", "audio/mpeg"),
		Categories:  []string{"podcast"},
	})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	s, err := feed.WriteString("utf-8")
	if err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	if !strings.Contains(s, `<rss version="0.91"`) {
		t.Errorf("output missing 0.91 version attribute:\n%s", s)
	}
	for _, forbidden := range []string{
		"<author>", "dc:creator", "<pubDate>", "<guid>",
		"<enclosure", "<category>", "<ttl>",
	} {
		if strings.Contains(s, forbidden) {
			t.Errorf("rss 0.91 output must not contain %q:\n%s", forbidden, s)
		}
	}
}

func TestRSSEscaping(t *testing.T) {
	feed, err := NewRSS2(Options{
		Title:       "Tom & Jerry",
		Link:        "http://x/",
		Description: "a < b > c",
	})
	if err != nil {
		t.Fatalf("NewRSS2() error = %v", err)
	}
	if err := feed.AddItem(Item{Title: "AT&T", Link: "http://x/att", Description: "<p>html</p>"}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	s, err := feed.WriteString("utf-8")
	if err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	for _, expected := range []string{
		"<title>Tom &amp; Jerry</title>",
		"<description>a &lt; b &gt; c</description>",
		"<title>AT&amp;T</title>",
		"<description>&lt;p&gt;html&lt;/p&gt;</description>",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("output missing %q:\n%s", expected, s)
		}
	}
}
