// Package olc provides a personal catalogue of OSINT resource links.
// Records are stored as a single JSON document (or optionally SQLite),
// searched with case-insensitive substring matching, and auto-classified
// by an external language model when metadata is not supplied by hand.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., jsonfile/, sqlite/, gemini/).
package olc
