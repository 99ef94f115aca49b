package geometry

// Shortcuts maps named positions to their canonical symbolic strings.
// A symbolic spec that exactly matches a shortcut name is replaced by
// its expansion before tokenizing.
var Shortcuts = map[string]string{
	"full":   "tl w:100% h:100%",
	"left":   "tl w:50% h:100%",
	"right":  "tr w:50% h:100%",
	"top":    "tl w:100% h:50%",
	"bottom": "bl w:100% h:50%",

	"top-left":     "tl w:50% h:50%",
	"top-right":    "tr w:50% h:50%",
	"bottom-left":  "bl w:50% h:50%",
	"bottom-right": "br w:50% h:50%",

	"left-third":   "tl w:1/3 h:100%",
	"center-third": "x:1/3 w:1/3 h:100%",
	"right-third":  "x:2/3 w:1/3 h:100%",
	"top-third":    "tl w:100% h:1/3",
	"middle-third": "y:1/3 w:100% h:1/3",
	"bottom-third": "y:2/3 w:100% h:1/3",

	"left-two-thirds":  "tl w:2/3 h:100%",
	"right-two-thirds": "x:1/3 w:2/3 h:100%",
}

// ShortcutNames returns the shortcut names in no particular order.
func ShortcutNames() []string {
	names := make([]string, 0, len(Shortcuts))
	for name := range Shortcuts {
		names = append(names, name)
	}
	return names
}
