// Package style installs the application stylesheet and keeps source views
// in line with the light or dark appearance.
package style

import (
	"embed"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4-sourceview/pkg/gtksource/v5"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

//go:embed *.css
var fs embed.FS

func Load() {
	provider := gtk.NewCSSProvider()
	css, _ := fs.ReadFile("style.css")
	provider.LoadFromData(string(css))
	gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

// FollowScheme applies the Adwaita source scheme matching the current
// appearance to buffers, now and whenever the appearance changes.
func FollowScheme(buffers ...*gtksource.Buffer) {
	manager := adw.StyleManagerGetDefault()
	apply := func() {
		name := "Adwaita"
		if manager.Dark() {
			name = "Adwaita-dark"
		}
		scheme := gtksource.StyleSchemeManagerGetDefault().Scheme(name)
		for _, buf := range buffers {
			buf.SetStyleScheme(scheme)
		}
	}
	apply()
	manager.NotifyProperty("dark", apply)
}
