// Package utils provides presentation helpers shared by the HTTP handlers,
// the exporters and the CLI, mainly for rendering prices and quantities.
package utils
