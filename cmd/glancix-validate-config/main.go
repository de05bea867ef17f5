package main

import (
	"fmt"
	"log"
	"os"

	"github.com/glancix/glancix/lib/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <recipe file>", os.Args[0])
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Recipe invalid: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Recipe valid!\n\n")

	fmt.Print(cfg)
}
