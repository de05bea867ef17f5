package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glancix/glancix/lib/config"
	"github.com/glancix/glancix/lib/gallery"
)

func main() {
	configPtr := flag.String("config", "", "Path to the recipe file")
	scenePtr := flag.String("scene", "", "Only generate this scene")
	outPtr := flag.String("out", "", "Directory to write state files to (default: the recipe's output dir, or stdout)")
	flag.Parse()

	if *configPtr == "" {
		log.Fatalf("Usage: %s -config <recipe file> [-scene <name>] [-out <dir>]", os.Args[0])
	}

	cfg, err := config.Parse(*configPtr)
	if err != nil {
		log.Fatalf("could not parse recipe: %s", err)
	}

	g, err := gallery.New(cfg)
	if err != nil {
		log.Fatalf("could not generate states: %s", err)
	}

	outDir := *outPtr
	if outDir == "" {
		outDir = string(cfg.Output)
	}

	names := g.SceneNames()
	if *scenePtr != "" {
		if g.Scene(*scenePtr) == nil {
			log.Fatalf("no such scene: %s", *scenePtr)
		}
		names = []string{*scenePtr}
	}

	if outDir != "" {
		err = os.MkdirAll(outDir, 0o755)
		if err != nil {
			log.Fatalf("could not create %s: %s", outDir, err)
		}
	}

	for _, name := range names {
		doc, err := json.MarshalIndent(g.Scene(name), "", "  ")
		if err != nil {
			log.Fatalf("could not encode state for %s: %s", name, err)
		}
		if outDir == "" {
			fmt.Printf("%s\n", doc)
			continue
		}
		path := filepath.Join(outDir, name+".json")
		err = os.WriteFile(path, append(doc, '\n'), 0o644)
		if err != nil {
			log.Fatalf("could not write %s: %s", path, err)
		}
		log.Printf("wrote %s", path)
	}
}
