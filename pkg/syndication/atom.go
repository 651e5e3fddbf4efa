package syndication

import (
	"io"

	"github.com/feedsmith/feedsmith/pkg/xmlutil"
)

func writeAtom10(f *Feed, w io.Writer, encoding string) error {
	h := hooks{
		rootAttributes:  atomRootAttributes,
		addRootElements: atomRootElements,
		addItemElements: atomEntryElements,
	}

	x := xmlutil.NewWriter(w, encoding)
	x.Start("feed", h.rootAttrs(f)...)
	h.addRootElements(x, f)
	for _, it := range f.items {
		x.Start("entry", h.itemAttrs(f, it)...)
		h.addItemElements(x, f, it)
		x.End("entry")
	}
	x.End("feed")
	return x.Flush()
}

func atomRootAttributes(f *Feed) []xmlutil.Attr {
	attrs := []xmlutil.Attr{{Name: "xmlns", Value: atomNS}}
	if f.meta.Language != "" {
		attrs = append(attrs, xmlutil.Attr{Name: "xml:lang", Value: f.meta.Language})
	}
	return attrs
}

func atomRootElements(w *xmlutil.Writer, f *Feed) {
	w.Quick("title", f.meta.Title)
	w.Quick("link", "",
		xmlutil.Attr{Name: "rel", Value: "alternate"},
		xmlutil.Attr{Name: "href", Value: f.meta.Link})
	if f.meta.FeedURL != "" {
		w.Quick("link", "",
			xmlutil.Attr{Name: "rel", Value: "self"},
			xmlutil.Attr{Name: "href", Value: f.meta.FeedURL})
	}
	w.Quick("id", f.id)
	w.Quick("updated", RFC3339Date(f.LatestPostDate()))
	atomAuthor(w, f.meta.AuthorName, f.meta.AuthorEmail, f.meta.AuthorLink)
	if f.meta.Subtitle != "" {
		w.Quick("subtitle", f.meta.Subtitle)
	}
	for _, cat := range f.meta.Categories {
		w.Quick("category", "", xmlutil.Attr{Name: "term", Value: cat})
	}
	if f.meta.Copyright != "" {
		w.Quick("rights", f.meta.Copyright)
	}
}

func atomEntryElements(w *xmlutil.Writer, _ *Feed, it *Item) {
	w.Quick("title", it.Title)
	w.Quick("link", "",
		xmlutil.Attr{Name: "href", Value: it.Link},
		xmlutil.Attr{Name: "rel", Value: "alternate"})
	if !it.PubDate.IsZero() {
		w.Quick("updated", RFC3339Date(it.PubDate))
	}
	atomAuthor(w, it.AuthorName, it.AuthorEmail, it.AuthorLink)

	id := it.UniqueID
	if id == "" {
		id = TagURI(it.Link, it.PubDate)
	}
	w.Quick("id", id)

	if it.Description != "" {
		w.Quick("summary", it.Description, xmlutil.Attr{Name: "type", Value: "html"})
	}
	if enc := it.Enclosure; enc != nil {
		w.Quick("link", "",
			xmlutil.Attr{Name: "rel", Value: "enclosure"},
			xmlutil.Attr{Name: "href", Value: enc.URL},
			xmlutil.Attr{Name: "length", Value: enc.Length},
			xmlutil.Attr{Name: "type", Value: enc.MIMEType})
	}
	for _, cat := range it.Categories {
		w.Quick("category", "", xmlutil.Attr{Name: "term", Value: cat})
	}
	if it.Copyright != "" {
		w.Quick("rights", it.Copyright)
	}
}

// atomAuthor writes an author block gated on the name, which Atom requires
// inside <author>.
func atomAuthor(w *xmlutil.Writer, name, email, uri string) {
	if name == "" {
		return
	}
	w.Start("author")
	w.Quick("name", name)
	if email != "" {
		w.Quick("email", email)
	}
	if uri != "" {
		w.Quick("uri", uri)
	}
	w.End("author")
}
