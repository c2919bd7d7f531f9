// Package playlist implements the recursive media collection.
//
// A Playlist holds an ordered mix of media identifiers and nested playlists.
// Ownership is exclusive: a playlist belongs to at most one parent, and
// AddPlaylist rejects any insertion that would create a containment cycle, so
// Flatten always terminates. Flatten enumerates leaf identifiers depth-first
// in insertion order and never mutates state.
//
// Playlists may be built in code or loaded from a TOML definition file whose
// nested [[entries]] tables mirror the playlist structure.
package playlist
