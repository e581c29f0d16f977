package main

import (
	"flag"
	"log"
	"os"

	"github.com/mypetvenues/services/api/internal/infrastructure/seed"
)

// Writes the built-in dataset as a TOML seed file, ready to edit and feed
// back to the API through SEED_FILE.
func main() {
	out := flag.String("out", "seed.toml", "path of the seed file to write")
	flag.Parse()

	logger := log.New(os.Stdout, "[mypetvenues-seed] ", log.LstdFlags)

	encoded, err := seed.Encode(seed.Default())
	if err != nil {
		logger.Fatalf("failed to encode seed data: %v", err)
	}

	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		logger.Fatalf("failed to write %s: %v", *out, err)
	}

	logger.Printf("wrote %s (%d bytes)", *out, len(encoded))
}
