package syndication

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/feedsmith/feedsmith/pkg/textutil"
)

var (
	// ErrUnknownFormat is returned by New for the zero Format or any
	// Format value outside the package's closed set.
	ErrUnknownFormat = errors.New("syndication: unknown feed format")

	// ErrMissingField is returned when a required feed or item field is
	// empty after normalization.
	ErrMissingField = errors.New("syndication: missing required field")
)

// Options carries feed-level metadata. Title, Link and Description are
// required; everything else is optional. Extension data that no named field
// covers travels in Extra; named fields always win over same-named keys.
type Options struct {
	Title       string
	Link        string
	Description string

	Language    string
	AuthorEmail string
	AuthorName  string
	AuthorLink  string
	Subtitle    string
	Categories  []string
	FeedURL     string
	Copyright   string
	GUID        string
	TTL         int

	Extra map[string]any
}

// Item is one entry within a feed. Title, Link and Description are required;
// the zero value of every other field means "not set".
type Item struct {
	Title       string
	Link        string
	Description string

	AuthorEmail string
	AuthorName  string
	AuthorLink  string
	PubDate     time.Time
	Comments    string
	UniqueID    string
	Enclosure   *Enclosure
	Categories  []string
	Copyright   string
	TTL         int

	Extra map[string]any
}

// Enclosure references a media attachment. Treat it as immutable once
// constructed; it is owned by exactly one item.
type Enclosure struct {
	URL      string
	Length   string
	MIMEType string
}

// NewEnclosure builds an Enclosure, percent-encoding the URL.
func NewEnclosure(url, length, mimeType string) *Enclosure {
	return &Enclosure{URL: textutil.IRIToURI(url), Length: length, MIMEType: mimeType}
}

// Feed holds normalized feed metadata and an append-only item sequence for
// one wire format. Construct with New or one of the per-format constructors.
type Feed struct {
	format Format
	meta   Options
	id     string
	items  []*Item
}

// New builds a feed in the given format. It fails with ErrUnknownFormat for
// a Format outside the package's set and with ErrMissingField when title,
// link or description is empty. URI-valued fields are percent-encoded here,
// once, so renderers never re-encode them.
func New(format Format, opts Options) (*Feed, error) {
	if format.write == nil {
		return nil, ErrUnknownFormat
	}
	if err := requireFields("feed", opts.Title, opts.Link, opts.Description); err != nil {
		return nil, err
	}

	// The feed id defaults to the link as given, before encoding.
	id := opts.GUID
	if id == "" {
		id = opts.Link
	}

	meta := opts
	meta.Link = textutil.IRIToURI(opts.Link)
	meta.AuthorLink = textutil.IRIToURI(opts.AuthorLink)
	meta.FeedURL = textutil.IRIToURI(opts.FeedURL)
	meta.Categories = append([]string(nil), opts.Categories...)
	meta.Extra = normalizeExtra(opts.Extra)

	return &Feed{format: format, meta: meta, id: id}, nil
}

// NewRSS091 builds an RSS 0.91 feed.
func NewRSS091(opts Options) (*Feed, error) { return New(RSS091, opts) }

// NewRSS2 builds an RSS 2.0 feed.
func NewRSS2(opts Options) (*Feed, error) { return New(RSS20, opts) }

// NewAtom1 builds an Atom 1.0 feed.
func NewAtom1(opts Options) (*Feed, error) { return New(Atom10, opts) }

// NewJSON builds a JSON Feed 1.1 feed.
func NewJSON(opts Options) (*Feed, error) { return New(JSONFeed, opts) }

// AddItem normalizes the item and appends it to the feed. Items are kept in
// insertion order and cannot be removed or changed afterwards.
func (f *Feed) AddItem(item Item) error {
	if err := requireFields("item", item.Title, item.Link, item.Description); err != nil {
		return err
	}
	item.Link = textutil.IRIToURI(item.Link)
	item.AuthorLink = textutil.IRIToURI(item.AuthorLink)
	item.Categories = append([]string(nil), item.Categories...)
	item.Extra = normalizeExtra(item.Extra)
	f.items = append(f.items, &item)
	return nil
}

// NumItems returns the current number of items.
func (f *Feed) NumItems() int { return len(f.items) }

// LatestPostDate returns the maximum publication date across items. When no
// item carries one it falls back to the current wall-clock time, so the
// value is only stable for feeds with dated items. Feeds the Atom "updated"
// and RSS "lastBuildDate" elements.
func (f *Feed) LatestPostDate() time.Time {
	var latest time.Time
	for _, it := range f.items {
		if it.PubDate.After(latest) {
			latest = it.PubDate
		}
	}
	if latest.IsZero() {
		return time.Now()
	}
	return latest
}

// MIMEType returns the MIME type of the feed's format.
func (f *Feed) MIMEType() string { return f.format.mimeType }

// Format returns the feed's format.
func (f *Feed) Format() Format { return f.format }

// Write emits the complete document to w in the given encoding ("utf-8"
// when empty). Runes the target charset cannot represent are emitted as
// numeric character references. On error the partial output must be
// discarded by the caller; no recovery is attempted.
func (f *Feed) Write(w io.Writer, enc string) error {
	if enc == "" {
		enc = "utf-8"
	}
	e, name := charset.Lookup(enc)
	if e == nil {
		return fmt.Errorf("syndication: unsupported encoding %q", enc)
	}

	tw := transform.NewWriter(w, encoding.HTMLEscapeUnsupported(e.NewEncoder()))
	if err := f.format.write(f, tw, name); err != nil {
		return fmt.Errorf("failed to write %s feed: %w", f.format.name, err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to encode %s feed output: %w", f.format.name, err)
	}

	slog.Debug("Generated feed", "format", f.format.name, "items", len(f.items), "encoding", name)
	return nil
}

// WriteString renders the document into memory and returns it as a string.
func (f *Feed) WriteString(enc string) (string, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf, enc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func requireFields(scope, title, link, description string) error {
	for _, field := range []struct{ name, value string }{
		{"title", title},
		{"link", link},
		{"description", description},
	} {
		if field.value == "" {
			return fmt.Errorf("%w: %s %s", ErrMissingField, scope, field.name)
		}
	}
	return nil
}

// normalizeExtra copies extension data, stringifying everything outside the
// protected scalar set.
func normalizeExtra(extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return nil
	}
	m := make(map[string]any, len(extra))
	for k, v := range extra {
		m[k] = textutil.CoerceValue(v)
	}
	return m
}
