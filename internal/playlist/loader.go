package playlist

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileEntry is one [[entries]] table in a playlist file: either a media leaf
// or a nested group with its own entries.
type fileEntry struct {
	Media   string      `toml:"media"`
	Name    string      `toml:"name"`
	Entries []fileEntry `toml:"entries"`
}

type fileDoc struct {
	Name    string      `toml:"name"`
	Entries []fileEntry `toml:"entries"`
}

// Load reads a playlist definition from a TOML file.
//
// The file lists ordered [[entries]] tables. A leaf entry sets media; a group
// entry sets name and nests its own [[entries.entries]] tables. Order in the
// document is preserved across mixed leaf and group entries.
func Load(path string) (*Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse playlist: %w", err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, errors.New("playlist file must set a name")
	}
	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("playlist %q has no entries", doc.Name)
	}

	root := New(doc.Name)
	if err := buildEntries(root, doc.Entries); err != nil {
		return nil, err
	}
	return root, nil
}

func buildEntries(parent *Playlist, entries []fileEntry) error {
	for i, e := range entries {
		hasMedia := strings.TrimSpace(e.Media) != ""
		isGroup := strings.TrimSpace(e.Name) != "" || len(e.Entries) > 0

		switch {
		case hasMedia && isGroup:
			return fmt.Errorf("playlist %q entry %d sets both media and group fields", parent.Name(), i+1)
		case hasMedia:
			if err := parent.AddMedia(e.Media); err != nil {
				return fmt.Errorf("playlist %q entry %d: %w", parent.Name(), i+1, err)
			}
		case isGroup:
			if len(e.Entries) == 0 {
				return fmt.Errorf("playlist %q group %q has no entries", parent.Name(), e.Name)
			}
			child := New(e.Name)
			if err := buildEntries(child, e.Entries); err != nil {
				return err
			}
			if err := parent.AddPlaylist(child); err != nil {
				return fmt.Errorf("playlist %q entry %d: %w", parent.Name(), i+1, err)
			}
		default:
			return fmt.Errorf("playlist %q entry %d sets neither media nor group fields", parent.Name(), i+1)
		}
	}
	return nil
}
