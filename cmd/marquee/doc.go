// Command marquee is the command-line interface for the marquee playback
// toolkit: playing media and playlists, managing the media catalog, and
// working with configuration files.
package main
