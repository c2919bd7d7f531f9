package playlist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycle indicates an AddPlaylist call would create a containment cycle.
var ErrCycle = errors.New("playlist membership cycle")

// entry is one slot in a playlist: a media ID or a nested playlist, never both.
type entry struct {
	mediaID string
	child   *Playlist
}

// Playlist is a named, ordered collection of media identifiers and nested
// playlists.
type Playlist struct {
	name    string
	parent  *Playlist
	entries []entry
}

// New creates an empty playlist.
func New(name string) *Playlist {
	return &Playlist{name: strings.TrimSpace(name)}
}

// Name returns the playlist name.
func (p *Playlist) Name() string { return p.name }

// AddMedia appends a leaf media identifier.
func (p *Playlist) AddMedia(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("media id cannot be empty")
	}
	p.entries = append(p.entries, entry{mediaID: id})
	return nil
}

// AddPlaylist appends a nested playlist. The child must not already belong to
// a parent, and the insertion must not create a cycle: adding a playlist to
// itself or to any playlist it transitively contains is rejected before any
// state changes.
func (p *Playlist) AddPlaylist(child *Playlist) error {
	if child == nil {
		return errors.New("nested playlist cannot be nil")
	}
	if child == p {
		return fmt.Errorf("%w: %q cannot contain itself", ErrCycle, p.name)
	}
	// Walk the ownership chain upward: if the child is an ancestor of this
	// playlist, inserting it here would close a loop.
	for ancestor := p.parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return fmt.Errorf("%w: %q already contains %q", ErrCycle, child.name, p.name)
		}
	}
	if child.parent != nil {
		return fmt.Errorf("playlist %q already belongs to %q", child.name, child.parent.name)
	}

	child.parent = p
	p.entries = append(p.entries, entry{child: child})
	return nil
}

// Flatten returns all leaf media identifiers contained transitively, depth
// first and left to right in insertion order. It never mutates state and is
// safe to call repeatedly.
func (p *Playlist) Flatten() []string {
	var ids []string
	p.appendLeaves(&ids)
	return ids
}

func (p *Playlist) appendLeaves(ids *[]string) {
	for _, e := range p.entries {
		if e.child != nil {
			e.child.appendLeaves(ids)
			continue
		}
		*ids = append(*ids, e.mediaID)
	}
}

// Count returns the number of transitive leaves, not direct entries.
func (p *Playlist) Count() int {
	count := 0
	for _, e := range p.entries {
		if e.child != nil {
			count += e.child.Count()
			continue
		}
		count++
	}
	return count
}

// Len returns the number of direct entries.
func (p *Playlist) Len() int { return len(p.entries) }
