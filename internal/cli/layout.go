package cli

import (
	"bytes"
	_ "embed"

	"github.com/grindlemire/go-gridtui/layoutfile"
)

//go:embed demo.toml
var demoLayout []byte

// loadLayout reads the layout at path, or the built-in demo when path is "".
func loadLayout(path string) (*layoutfile.File, error) {
	if path == "" {
		return layoutfile.Load(bytes.NewReader(demoLayout))
	}
	return layoutfile.LoadFile(path)
}

func layoutName(path string) string {
	if path == "" {
		return "built-in demo"
	}
	return path
}
