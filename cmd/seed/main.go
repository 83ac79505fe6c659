package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"fashionmela/internal/config"
	identityrepo "fashionmela/internal/repository/identity"
	"fashionmela/internal/seed"
	"fashionmela/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := seed.Apply(identityrepo.NewStore(store)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
