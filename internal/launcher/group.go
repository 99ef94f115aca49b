package launcher

import (
	"path/filepath"
	"strings"

	"github.com/dmezquita/workspacectl/internal/template"
)

// GroupKey identifies window entries that the discovery diff cannot
// tell apart: same type and same discriminator (title for kitty
// windows, window class for apps). Entries sharing a key must launch
// one at a time; entries in different groups never collide and may
// launch concurrently.
type GroupKey struct {
	Type          string
	Discriminator string
}

// DefaultKittyTitle is used when a kitty entry declares no title.
const DefaultKittyTitle = "Kitty"

// Key computes the grouping key for a window entry.
func Key(w template.Window) GroupKey {
	switch w.Type {
	case "kitty":
		title := w.Title
		if title == "" {
			title = DefaultKittyTitle
		}
		return GroupKey{Type: w.Type, Discriminator: title}
	default:
		return GroupKey{Type: w.Type, Discriminator: effectiveClass(w)}
	}
}

// effectiveClass is the declared window_class, or the executable
// basename of the command when none is declared.
func effectiveClass(w template.Window) string {
	if w.WindowClass != "" {
		return w.WindowClass
	}
	fields := strings.Fields(w.Command)
	if len(fields) == 0 {
		return ""
	}
	return filepath.Base(fields[0])
}

// partition splits entries into groups by key. Every entry lands in
// exactly one group and keeps its declaration order relative to the
// rest of its group. Group order follows first appearance, which keeps
// runs reproducible to read even though groups execute concurrently.
func partition(windows []template.Window) [][]template.Window {
	var groups [][]template.Window
	index := make(map[GroupKey]int)
	for _, w := range windows {
		k := Key(w)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], w)
	}
	return groups
}
