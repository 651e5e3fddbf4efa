package syndication

import "io"

// Format identifies one concrete wire format. The set of formats is closed:
// each value bundles the MIME type and the document writer for that format,
// and the zero Format is rejected by New.
type Format struct {
	name     string
	mimeType string
	write    func(f *Feed, w io.Writer, encoding string) error
}

// String returns the short format name, e.g. "rss2.0".
func (f Format) String() string { return f.name }

// MIMEType returns the MIME type callers should serve the format under.
func (f Format) MIMEType() string { return f.mimeType }

var (
	// RSS091 is RSS 0.91 (Userland), the minimal item set.
	RSS091 = Format{name: "rss0.91", mimeType: "application/rss+xml", write: writeRSS091}

	// RSS20 is RSS 2.0, http://blogs.law.harvard.edu/tech/rss
	RSS20 = Format{name: "rss2.0", mimeType: "application/rss+xml", write: writeRSS20}

	// Atom10 is Atom 1.0, RFC 4287.
	Atom10 = Format{name: "atom1.0", mimeType: "application/atom+xml", write: writeAtom10}

	// JSONFeed is JSON Feed 1.1, https://jsonfeed.org/version/1.1
	JSONFeed = Format{name: "jsonfeed1.1", mimeType: "application/feed+json", write: writeJSONFeed}

	// Default is the format handed to callers that do not care which
	// format they get.
	Default = RSS20
)
