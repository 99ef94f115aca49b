// Package shortcuts keeps per-template .desktop launcher files in sync
// with the templates directory, so every workspace template shows up in
// the desktop's application grid.
package shortcuts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmezquita/workspacectl/internal/template"
)

// filePrefix marks the launcher files this tool owns; only files with
// this prefix are ever created or removed.
const filePrefix = "workspacectl-"

// Result reports what a sync changed.
type Result struct {
	Written []string `yaml:"written,omitempty" json:"written,omitempty"`
	Removed []string `yaml:"removed,omitempty" json:"removed,omitempty"`
}

// DefaultDir is where desktop entries are installed for the current
// user.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "applications")
	}
	return filepath.Join(home, ".local", "share", "applications")
}

// Sync writes one .desktop file per template into dir and removes
// launcher files for templates that no longer exist. Templates that
// failed to parse are skipped, not surfaced as launchers.
func Sync(infos []template.Info, dir string) (Result, error) {
	var res Result
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create %s: %w", dir, err)
	}

	want := make(map[string]bool, len(infos))
	for _, info := range infos {
		if info.Err != "" {
			continue
		}
		name := filePrefix + info.Name + ".desktop"
		want[name] = true
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(desktopEntry(info)), 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", path, err)
		}
		res.Written = append(res.Written, name)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".desktop") {
			continue
		}
		if want[name] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return res, fmt.Errorf("remove stale %s: %w", name, err)
		}
		res.Removed = append(res.Removed, name)
	}
	return res, nil
}

// desktopEntry renders the freedesktop.org Desktop Entry for one
// template.
func desktopEntry(info template.Info) string {
	comment := info.Description
	if comment == "" {
		comment = "Workspace template"
	}
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=Workspace: %s\n", info.Name)
	fmt.Fprintf(&b, "Comment=%s\n", escapeEntryValue(comment))
	fmt.Fprintf(&b, "Exec=workspacectl launch %s\n", info.Name)
	b.WriteString("Icon=preferences-system-windows\n")
	b.WriteString("Terminal=false\n")
	b.WriteString("Categories=Utility;\n")
	return b.String()
}

// escapeEntryValue keeps multi-line descriptions from breaking the
// key=value format.
func escapeEntryValue(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
