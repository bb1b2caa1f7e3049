// Package rosterparse extracts fantasy baseball rosters from saved league
// roster pages and emits them as structured data.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, slog/).
package rosterparse
