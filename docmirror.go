// Package docmirror mirrors a fixed list of documentation URLs into a local
// Markdown archive and records what changed between runs.
//
// This package contains domain types, interfaces and the formatting rules
// for the archive files, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, difflib/, robotstxt/).
package docmirror
