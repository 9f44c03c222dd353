// Package plistdoc exposes a decoded property list dictionary through a small
// key/value capability interface.
//
// Documents are read whole, decoded with howett.net/plist (binary, XML and
// OpenStep inputs are all accepted), patched in memory, and re-encoded in a
// chosen format. Values keep the dynamic shape the codec produces, so keys the
// caller never touches round-trip with the same semantic content even when the
// byte layout changes.
package plistdoc
