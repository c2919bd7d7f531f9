// Package render implements the stage chain that turns a media record into a
// rendered playback.
//
// A chain is a linear sequence of enhancement stages wrapped around exactly
// one terminal renderer. Each enhancement stage performs its pre-work,
// delegates to the next stage, then performs its post-work, so one render call
// brackets the terminal operation symmetrically: outermost pre first,
// outermost post last. Failures are fatal to the render call and propagate
// unchanged; stages never retry or suppress them.
//
// SupportsAcceleration is answered by the terminal renderer alone; enhancement
// stages forward the query without touching it.
package render
