package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/core"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("torus-life: ")

	cfg, err := app.Resolve(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.List {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}

	summary, err := app.New(cfg, log.Default()).Run()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(summary)
}
