package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/glancix/glancix/lib/api"
	"github.com/glancix/glancix/lib/config"
	"github.com/glancix/glancix/lib/gallery"
	glog "github.com/glancix/glancix/lib/log"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatalf("Usage: %s <recipe file>", os.Args[0])
	}
	recipePath := flag.Arg(0)

	slog.SetDefault(slog.New(glog.NewHandler(nil)))

	cfg, err := config.Parse(recipePath)
	if err != nil {
		log.Fatalf("could not parse recipe: %s", err)
	}
	if cfg.Api == nil {
		log.Fatalf("the recipe needs an api section to serve")
	}

	g, err := gallery.New(cfg)
	if err != nil {
		log.Fatalf("could not generate states: %s", err)
	}

	if cfg.Api.WatchRecipe {
		go g.Watch(recipePath)
	}

	api.ServeInBackground(g, cfg.Api)

	for !g.ShutdownRequested {
		time.Sleep(200 * time.Millisecond)
	}
	log.Printf("shutting down")
}
