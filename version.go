// Package daygen scaffolds Advent of Code solution modules for a Rust project.
package daygen

// Version is the current daygen release.
const Version = "0.2.0"
