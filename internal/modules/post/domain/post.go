package domain

import (
	"strings"
	"time"
)

// Post is one aggregated item of the public index. Field names follow the
// backend's JSON keys.
type Post struct {
	Title   string `json:"Title"`
	Link    string `json:"Link"`
	PubDate string `json:"PubDate"`
}

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// PublishedAt parses PubDate with the layouts feeds commonly use.
func (p Post) PublishedAt() (time.Time, bool) {
	raw := strings.TrimSpace(p.PubDate)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayDate is the date shown next to a post; unparseable dates are
// shown as received.
func (p Post) DisplayDate() string {
	if t, ok := p.PublishedAt(); ok {
		return t.Format("2006-01-02")
	}
	return p.PubDate
}

// View is a snapshot of a loader.
type View struct {
	State LoadState
	Posts []Post
}

func (v View) Presentation() Presentation {
	switch v.State {
	case LoadStatePopulated:
		if len(v.Posts) == 0 {
			return PresentationEmpty
		}
		return PresentationPopulated
	case LoadStateFailed:
		return PresentationUnavailable
	default:
		return PresentationLoading
	}
}
