// Package patcher writes equalizer band values into a copy of a Spotify
// preferences property list.
//
// A patch loads the input document, finds the first key containing the
// configured marker, replaces its value with the normalized bands, and saves
// the result to a new path. Every other key is carried over as decoded.
package patcher
