package syndication

import (
	"fmt"
	"io"
	"strconv"

	"github.com/feedsmith/feedsmith/pkg/xmlutil"
)

const (
	atomNS = "http://www.w3.org/2005/Atom"
	dcNS   = "http://purl.org/dc/elements/1.1/"
)

// hooks is the per-format slot table: extra attributes on the root and item
// elements plus the element writers for both levels. A nil slot means "no
// extra attributes" or "no elements".
type hooks struct {
	rootAttributes  func(f *Feed) []xmlutil.Attr
	addRootElements func(w *xmlutil.Writer, f *Feed)
	itemAttributes  func(f *Feed, it *Item) []xmlutil.Attr
	addItemElements func(w *xmlutil.Writer, f *Feed, it *Item)
}

func (h hooks) rootAttrs(f *Feed) []xmlutil.Attr {
	if h.rootAttributes == nil {
		return nil
	}
	return h.rootAttributes(f)
}

func (h hooks) itemAttrs(f *Feed, it *Item) []xmlutil.Attr {
	if h.itemAttributes == nil {
		return nil
	}
	return h.itemAttributes(f, it)
}

func writeRSS091(f *Feed, w io.Writer, encoding string) error {
	return writeRSSDocument(f, w, encoding, "0.91", hooks{
		addRootElements: rssRootElements,
		addItemElements: rss091ItemElements,
	})
}

func writeRSS20(f *Feed, w io.Writer, encoding string) error {
	return writeRSSDocument(f, w, encoding, "2.0", hooks{
		addRootElements: rssRootElements,
		addItemElements: rss20ItemElements,
	})
}

// writeRSSDocument runs the skeleton shared by every RSS version:
// rss > channel > root elements > item*.
func writeRSSDocument(f *Feed, w io.Writer, encoding, version string, h hooks) error {
	x := xmlutil.NewWriter(w, encoding)
	x.Start("rss",
		xmlutil.Attr{Name: "version", Value: version},
		xmlutil.Attr{Name: "xmlns:atom", Value: atomNS})
	x.Start("channel", h.rootAttrs(f)...)
	if h.addRootElements != nil {
		h.addRootElements(x, f)
	}
	for _, it := range f.items {
		x.Start("item", h.itemAttrs(f, it)...)
		if h.addItemElements != nil {
			h.addItemElements(x, f, it)
		}
		x.End("item")
	}
	x.End("channel")
	x.End("rss")
	return x.Flush()
}

func rssRootElements(w *xmlutil.Writer, f *Feed) {
	w.Quick("title", f.meta.Title)
	w.Quick("link", f.meta.Link)
	w.Quick("description", f.meta.Description)
	w.Quick("atom:link", "",
		xmlutil.Attr{Name: "rel", Value: "self"},
		xmlutil.Attr{Name: "href", Value: f.meta.FeedURL})
	if f.meta.Language != "" {
		w.Quick("language", f.meta.Language)
	}
	for _, cat := range f.meta.Categories {
		w.Quick("category", cat)
	}
	if f.meta.Copyright != "" {
		w.Quick("copyright", f.meta.Copyright)
	}
	w.Quick("lastBuildDate", RFC2822Date(f.LatestPostDate()))
	if f.meta.TTL > 0 {
		w.Quick("ttl", strconv.Itoa(f.meta.TTL))
	}
}

func rss091ItemElements(w *xmlutil.Writer, _ *Feed, it *Item) {
	w.Quick("title", it.Title)
	w.Quick("link", it.Link)
	if it.Description != "" {
		w.Quick("description", it.Description)
	}
}

func rss20ItemElements(w *xmlutil.Writer, f *Feed, it *Item) {
	rss091ItemElements(w, f, it)

	switch {
	case it.AuthorName != "" && it.AuthorEmail != "":
		w.Quick("author", fmt.Sprintf("%s (%s)", it.AuthorEmail, it.AuthorName))
	case it.AuthorEmail != "":
		w.Quick("author", it.AuthorEmail)
	case it.AuthorName != "":
		w.Quick("dc:creator", it.AuthorName, xmlutil.Attr{Name: "xmlns:dc", Value: dcNS})
	}

	if !it.PubDate.IsZero() {
		w.Quick("pubDate", RFC2822Date(it.PubDate))
	}
	if it.Comments != "" {
		w.Quick("comments", it.Comments)
	}
	if it.UniqueID != "" {
		w.Quick("guid", it.UniqueID)
	}
	if it.TTL > 0 {
		w.Quick("ttl", strconv.Itoa(it.TTL))
	}
	if enc := it.Enclosure; enc != nil {
		w.Quick("enclosure", "",
			xmlutil.Attr{Name: "url", Value: enc.URL},
			xmlutil.Attr{Name: "length", Value: enc.Length},
			xmlutil.Attr{Name: "type", Value: enc.MIMEType})
	}
	for _, cat := range it.Categories {
		w.Quick("category", cat)
	}
}
