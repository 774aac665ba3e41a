// Command reset wipes the saved state of one or more players in the
// configured save store.
//
//	reset alice bob
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/osse101/IconIdle_Go/internal/bootstrap"
	"github.com/osse101/IconIdle_Go/internal/config"
	"github.com/osse101/IconIdle_Go/internal/savestate"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-timeout d] player-id...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}

	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Println("Warning: STORE_DRIVER is memory, nothing persistent to reset")
	}

	saves := savestate.NewManager(store)
	failed := 0
	for _, playerID := range flag.Args() {
		if err := saves.Reset(ctx, playerID); err != nil {
			log.Printf("Failed to reset %s: %v\n", playerID, err)
			failed++
			continue
		}
		log.Printf("Reset saves for %s\n", playerID)
	}

	_ = store.Close()
	if failed > 0 {
		cancel()
		os.Exit(1)
	}
	log.Println("✅ Reset complete")
}
