package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/panyam/cdecl/cmd/cdecl/commands"
)

func main() {
	if os.Getenv("CDECL_ENV") == "dev" {
		logger := slog.New(commands.NewPrettyHandler(os.Stderr, commands.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{
				Level: slog.LevelDebug,
			},
		}))
		slog.SetDefault(logger)
	}

	// .env is optional for a CLI tool
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	commands.Execute()
}
