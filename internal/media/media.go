// Package media defines the Record value that identifies a retrievable item.
//
// A Record is produced by a source backend and consumed by render stages. It
// is a plain value: construct it once and pass it around by copy. Identity is
// the ID field; the locator is whatever the owning backend needs to reach the
// underlying item (a path, a URL, a catalog row).
package media

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record identifies a retrieved media item.
type Record struct {
	ID      string
	Locator string
	Title   string
}

// ErrEmptyID is returned when a record is constructed without an identifier.
var ErrEmptyID = errors.New("media id cannot be empty")

// NewRecord builds a Record after trimming its fields. The locator may be
// empty; backends that resolve lazily fill it in themselves.
func NewRecord(id, locator, title string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrEmptyID
	}
	return Record{
		ID:      id,
		Locator: strings.TrimSpace(locator),
		Title:   strings.TrimSpace(title),
	}, nil
}

// DisplayTitle returns a human-readable title for the record. When the title
// field is empty it is derived from the ID by replacing separator runes with
// spaces and title-casing the result.
func (r Record) DisplayTitle() string {
	title := r.Title
	if title == "" {
		title = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(r.ID)
	}
	return cases.Title(language.Und).String(title)
}
