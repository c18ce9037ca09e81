// Package web embeds the browser assets served under /static.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the asset tree rooted at the static directory.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
