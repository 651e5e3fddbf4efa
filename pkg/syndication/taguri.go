package syndication

import (
	"fmt"
	"net/url"
	"time"
)

// TagURI derives a stable tag-scheme identifier from a link and an optional
// date, following http://diveintomark.org/archives/2004/05/28/howto-atom-id.
// A zero date omits the date segment. Used as the entry id fallback when an
// item carries no explicit unique id.
func TagURI(rawurl string, date time.Time) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		u = &url.URL{}
	}
	var d string
	if !date.IsZero() {
		d = "," + date.Format("2006-01-02")
	}
	return fmt.Sprintf("tag:%s%s:%s/%s", u.Hostname(), d, u.Path, u.Fragment)
}
