// Package internal holds values shared by every other package.
package internal

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/ananyadwivedi1010/TUF-Flash/internal.Version=...".
var Version = "1.0.0"
