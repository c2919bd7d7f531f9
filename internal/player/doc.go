// Package player coordinates retrieval and rendering for single media items
// and whole playlists. A Player owns one Source and one render pipeline head;
// the pipeline can be swapped between plays without rebuilding the player.
package player
