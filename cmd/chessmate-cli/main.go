package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessmate/internal/config"
	"github.com/hailam/chessmate/internal/console"
	"github.com/hailam/chessmate/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	perft      = flag.Int("perft", 0, "count leaf nodes from the start position to this depth and exit")
	divide     = flag.Bool("divide", false, "with -perft, print the count below each root move")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if *perft > 0 {
		cmd := "perft"
		if *divide {
			cmd = "divide"
		}
		console.New(os.Stdout, nil, cfg.Verbose).Execute(fmt.Sprintf("%s %d", cmd, *perft))
		return
	}

	var store *storage.Storage
	if !cfg.NoStorage {
		store, err = storage.NewStorage(cfg.DataDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	c := console.New(os.Stdout, store, cfg.Verbose)
	if err := c.Run(os.Stdin); err != nil {
		log.Printf("Warning: input error: %v", err)
	}
}
