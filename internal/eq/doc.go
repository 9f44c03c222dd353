// Package eq holds the ten-band equalizer model used by spotifyeq.
//
// It converts decibel gains (nominal range -12 to +12) into the normalized
// -1.0 to +1.0 values the Spotify client persists, owns the immutable table of
// built-in presets, and parses literal band values supplied on the command
// line. Everything here is pure; file access lives in plistdoc and patcher.
package eq
