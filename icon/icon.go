// Package icon renders Material icon glyphs and maps them onto the
// freedesktop symbolic icon theme used by GTK.
package icon

import (
	"strings"

	"github.com/getseabird/materia/internal/dom"
)

const Class = "material-icons"

// Node returns the glyph element for a Material icon name.
func Node(name string) *dom.Element {
	return &dom.Element{
		Tag:      dom.TagIcon,
		Class:    Class,
		Children: []dom.Node{dom.Text(name)},
	}
}

// Name returns the icon name carried by a glyph element produced by Node.
func Name(el *dom.Element) (string, bool) {
	if el == nil || el.Tag != dom.TagIcon || !el.HasClass(Class) {
		return "", false
	}
	return el.Text(), true
}

// Symbolic returns the theme icon name used to display a Material icon.
func Symbolic(name string) string {
	switch name {
	case "add":
		return "list-add-symbolic"
	case "remove":
		return "list-remove-symbolic"
	case "edit", "mode_edit", "create":
		return "document-edit-symbolic"
	case "delete":
		return "user-trash-symbolic"
	case "close", "clear":
		return "window-close-symbolic"
	case "check", "done":
		return "object-select-symbolic"
	case "menu":
		return "open-menu-symbolic"
	case "search":
		return "system-search-symbolic"
	case "settings":
		return "emblem-system-symbolic"
	case "publish", "send":
		return "document-send-symbolic"
	case "attach_file":
		return "mail-attachment-symbolic"
	case "insert_chart":
		return "x-office-spreadsheet-symbolic"
	case "format_quote":
		return "format-text-italic-symbolic"
	case "cloud":
		return "weather-overcast-symbolic"
	case "refresh":
		return "view-refresh-symbolic"
	case "info":
		return "dialog-information-symbolic"
	case "warning":
		return "dialog-warning-symbolic"
	case "":
		return "image-missing-symbolic"
	}

	return strings.ReplaceAll(name, "_", "-") + "-symbolic"
}
