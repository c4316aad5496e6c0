package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/component"
	"github.com/getseabird/materia/internal/ctxt"
	"github.com/getseabird/materia/internal/pubsub"
	r "github.com/getseabird/materia/internal/reactive"
	"github.com/getseabird/materia/internal/tooltip"
	"github.com/getseabird/materia/state"
	"github.com/getseabird/materia/widget"
	"k8s.io/klog/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	klog.InitFlags(nil)
	configPath := flag.String("config", "", "showcase catalogue, defaults to the user config directory")
	flag.Parse()

	path := *configPath
	if path == "" {
		var err error
		if path, err = state.DefaultPath(); err != nil {
			log.Fatal(err)
		}
	}
	config, err := state.LoadConfig(path)
	if err != nil {
		log.Fatal(err)
	}
	klog.V(1).Infof("materia %s (%s, %s), %d buttons from %s", version, commit, date, len(config.Buttons), path)

	gtk.Init()

	ctx := ctxt.With[widget.TooltipActivator](context.Background(), tooltip.New(klog.Background().WithName("tooltip")))
	app := adw.NewApplication("dev.skynomads.Materia", gio.ApplicationFlagsNone)

	var window *adw.ApplicationWindow
	app.ConnectActivate(func() {
		if window == nil {
			window = r.NewTree(ctx, r.CreateComponent(&component.Showcase{
				Application: app,
				Path:        path,
				Config:      pubsub.NewProperty(config),
			})).(*adw.ApplicationWindow)
		}
		window.Present()
	})

	if code := app.Run(append([]string{os.Args[0]}, flag.Args()...)); code > 0 {
		os.Exit(code)
	}
}
