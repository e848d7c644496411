// Package levels holds the world file shipped inside the binaries.
package levels

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.tmx
var embedded embed.FS

// FS returns the level files. A non-empty dir reads them from disk, which
// is what hot reload watches; otherwise the embedded copy is used.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return embedded
}
