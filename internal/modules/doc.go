// Package modules contains the site's self-contained features.
//
// Each subdirectory is a module implementing the `module.Module` interface and
// is mounted under its own path, /<name>. Modules are listed in
// `internal/app/modules.go` and booted by the server at startup.
package modules
