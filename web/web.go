// Package web embeds the registration form and its client-side
// validator script so the server ships as a single binary with no
// asset directory to deploy alongside it.
//
// The script in public/ mirrors the rule set in internal/validation —
// same patterns, same message strings. It is advisory only: every rule
// is re-checked server-side.
package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var assets embed.FS

// Assets returns the static form assets rooted at the directory the
// file server should expose (index.html at /).
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "public")
	if err != nil {
		// Unreachable: "public" is embedded above.
		panic(err)
	}
	return sub
}
