// Package timeago renders coarse "Nm/Nh/Nd ago" labels.
package timeago

import (
	"fmt"
	"strings"
	"time"
)

// Unknown is returned for timestamps that cannot be parsed.
const Unknown = "unknown"

// Bucket renders elapsed times below Below in whole Units. Below == 0 means
// unbounded and should only appear last.
type Bucket struct {
	Below  time.Duration
	Unit   time.Duration
	Suffix string
}

// Policy is an ordered threshold table.
type Policy []Bucket

var (
	// Compact is used by the general market feed.
	Compact = Policy{
		{Below: time.Hour, Unit: time.Minute, Suffix: "m"},
		{Below: 24 * time.Hour, Unit: time.Hour, Suffix: "h"},
		{Unit: 24 * time.Hour, Suffix: "d"},
	}

	// Daily is used by the IPO and global impact feeds. A whole 24 hours
	// still reads "24h ago"; days start once the floored hours exceed 24.
	Daily = Policy{
		{Below: 25 * time.Hour, Unit: time.Hour, Suffix: "h"},
		{Unit: 24 * time.Hour, Suffix: "d"},
	}
)

// Since labels the time elapsed between t and now. Future instants count
// as zero elapsed.
func (p Policy) Since(t, now time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}
	for _, b := range p {
		if b.Below > 0 && elapsed >= b.Below {
			continue
		}
		return fmt.Sprintf("%d%s ago", int64(elapsed/b.Unit), b.Suffix)
	}
	return Unknown
}

// SinceString parses s and labels it, or returns Unknown.
func (p Policy) SinceString(s string, now time.Time) string {
	t, err := Parse(s)
	if err != nil {
		return Unknown
	}
	return p.Since(t, now)
}

var layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC850,
	time.ANSIC,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02",
}

// Parse reads an RFC 822/1123 feed date or an ISO 8601 timestamp.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("timeago: empty timestamp")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timeago: unrecognised timestamp %q", s)
}
