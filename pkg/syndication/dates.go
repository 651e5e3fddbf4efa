package syndication

import (
	"fmt"
	"time"
)

// Timestamps located in time.UTC are treated as "floating" times without a
// known zone: RFC2822Date renders them with the -0000 marker and RFC3339Date
// with Z. Any other location, including a fixed zone at offset zero, renders
// an explicit signed offset.

// RFC2822Date formats t for RSS pubDate/lastBuildDate elements.
func RFC2822Date(t time.Time) string {
	s := t.Format("Mon, 02 Jan 2006 15:04:05 ")
	if t.Location() == time.UTC {
		return s + "-0000"
	}
	_, offset := t.Zone()
	return s + zoneOffset(offset, "")
}

// RFC3339Date formats t for Atom updated elements.
func RFC3339Date(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if t.Location() == time.UTC {
		return s + "Z"
	}
	_, offset := t.Zone()
	return s + zoneOffset(offset, ":")
}

// zoneOffset renders a UTC offset in seconds as a signed four-digit zone
// string, with sep between hours and minutes. Sub-minute residue is
// truncated, never rounded.
func zoneOffset(seconds int, sep string) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	minutes := seconds / 60
	return fmt.Sprintf("%s%02d%s%02d", sign, minutes/60, sep, minutes%60)
}
