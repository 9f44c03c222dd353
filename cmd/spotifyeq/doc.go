// Package main hosts the spotifyeq CLI entrypoint and command graph.
//
// The root command converts a preset name or up to ten decibel gains into the
// Spotify client's normalized equalizer values and writes them into a copy of
// a preferences plist. Subcommands list presets, inspect plist files, and
// scaffold configuration.
//
// Keep this package lean: conversion, document handling, and patching live in
// the internal packages and are only wired and rendered here.
package main
