// Command devserver serves every function on one port for local development.
package main

import (
	"log/slog"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/joesexpress/studio-sub000/internal/entrypoints"
	"github.com/joesexpress/studio-sub000/internal/gcp"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using process environment.", "error", err)
	}

	entrypoints.RegisterAll()

	port := gcp.GetEnv("PORT", "8080")
	slog.Info("Starting function server.", "port", port)
	if err := funcframework.Start(port); err != nil {
		slog.Error("Function server stopped", "error", err)
		os.Exit(1)
	}
}
