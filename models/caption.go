package models

import (
	"net/http"
	"strconv"
	"time"
)

const (
	untitledCaption = "Untitled caption"
	unknownTime     = "Unknown time"
	keyPlaceholder  = "row"
)

// Caption is one row of the captions table as returned by PostgREST.
// Every column is nullable and is decoded independently.
type Caption struct {
	Content            *string `json:"content"`
	LikeCount          *int64  `json:"like_count"`
	CreatedDatetimeUTC *string `json:"created_datetime_utc"`
}

// DisplayContent returns the caption text, or a placeholder when it is null.
func (c Caption) DisplayContent() string {
	if c.Content == nil {
		return untitledCaption
	}
	return *c.Content
}

// DisplayLikes returns the like count, treating null as zero.
func (c Caption) DisplayLikes() int64 {
	if c.LikeCount == nil {
		return 0
	}
	return *c.LikeCount
}

// DisplayTime formats the creation timestamp in UTC, e.g. "Mon, 01 Jan 2024 00:00:00 GMT".
// A timestamp that cannot be parsed is returned as stored.
func (c Caption) DisplayTime() string {
	if c.CreatedDatetimeUTC == nil || *c.CreatedDatetimeUTC == "" {
		return unknownTime
	}
	t, ok := ParseTimestamp(*c.CreatedDatetimeUTC)
	if !ok {
		return *c.CreatedDatetimeUTC
	}
	return t.UTC().Format(http.TimeFormat)
}

// Key identifies the caption within one rendered list.
func (c Caption) Key(index int) string {
	prefix := keyPlaceholder
	if c.CreatedDatetimeUTC != nil {
		prefix = *c.CreatedDatetimeUTC
	}
	return prefix + "-" + strconv.Itoa(index)
}

// Layouts Postgres and PostgREST emit for timestamp and timestamptz columns.
// Values without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp as produced by Postgres.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
