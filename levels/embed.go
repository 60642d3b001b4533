package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a level file, preferring the on-disk copy so edited levels
// hot-reload without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// LoadScript reads a hook script by name.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	s := cleanPath(path)
	if strings.HasPrefix(s, "scripts/") {
		return s
	}
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
