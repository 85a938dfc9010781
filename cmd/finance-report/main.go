package main

import (
	"log/slog"
	"os"

	"github.com/joesexpress/studio-sub000/internal/entrypoints"
	_ "github.com/joho/godotenv/autoload"
)

func init() {
	// --- Set up structured logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	entrypoints.RegisterFinanceReport()
}

// main is required by the Go Functions Framework.
func main() {}
