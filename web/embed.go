package web

import "embed"

// FS contains the static assets served under /static.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static
var FS embed.FS
