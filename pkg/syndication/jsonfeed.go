package syndication

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

const jsonFeedVersion = "https://jsonfeed.org/version/1.1"

type jsonAuthor struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type jsonAttachment struct {
	URL         string `json:"url"`
	MIMEType    string `json:"mime_type"`
	SizeInBytes int64  `json:"size_in_bytes,omitempty"`
}

type jsonItem struct {
	ID            string           `json:"id"`
	URL           string           `json:"url,omitempty"`
	Title         string           `json:"title,omitempty"`
	ContentHTML   string           `json:"content_html,omitempty"`
	DatePublished string           `json:"date_published,omitempty"`
	Authors       []jsonAuthor     `json:"authors,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	Attachments   []jsonAttachment `json:"attachments,omitempty"`
}

type jsonDocument struct {
	Version     string       `json:"version"`
	Title       string       `json:"title"`
	HomePageURL string       `json:"home_page_url,omitempty"`
	FeedURL     string       `json:"feed_url,omitempty"`
	Description string       `json:"description,omitempty"`
	Language    string       `json:"language,omitempty"`
	Authors     []jsonAuthor `json:"authors,omitempty"`
	Items       []jsonItem   `json:"items"`
}

// writeJSONFeed renders the JSON Feed 1.1 document. Entry ids fall back to
// the same tag URI scheme the Atom renderer uses.
func writeJSONFeed(f *Feed, w io.Writer, _ string) error {
	doc := jsonDocument{
		Version:     jsonFeedVersion,
		Title:       f.meta.Title,
		HomePageURL: f.meta.Link,
		FeedURL:     f.meta.FeedURL,
		Description: f.meta.Description,
		Language:    f.meta.Language,
		Authors:     jsonAuthors(f.meta.AuthorName, f.meta.AuthorLink),
		Items:       make([]jsonItem, 0, len(f.items)),
	}

	for _, it := range f.items {
		id := it.UniqueID
		if id == "" {
			id = TagURI(it.Link, it.PubDate)
		}
		ji := jsonItem{
			ID:          id,
			URL:         it.Link,
			Title:       it.Title,
			ContentHTML: it.Description,
			Authors:     jsonAuthors(it.AuthorName, it.AuthorLink),
			Tags:        it.Categories,
		}
		if !it.PubDate.IsZero() {
			ji.DatePublished = RFC3339Date(it.PubDate)
		}
		if enc := it.Enclosure; enc != nil {
			att := jsonAttachment{URL: enc.URL, MIMEType: enc.MIMEType}
			if n, err := strconv.ParseInt(enc.Length, 10, 64); err == nil {
				att.SizeInBytes = n
			}
			ji.Attachments = []jsonAttachment{att}
		}
		doc.Items = append(doc.Items, ji)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to marshal json feed: %w", err)
	}
	return nil
}

func jsonAuthors(name, url string) []jsonAuthor {
	if name == "" && url == "" {
		return nil
	}
	return []jsonAuthor{{Name: name, URL: url}}
}
