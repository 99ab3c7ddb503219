package main

import (
	"os"
	"path/filepath"

	"ecakir/fintext/cmd/export"
	"ecakir/fintext/cmd/parse"
	"ecakir/fintext/cmd/root"
	"ecakir/fintext/cmd/seed"
	"ecakir/fintext/cmd/serve"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables before any command reads configuration.
	loadEnvSilently()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(seed.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads a .env file if one exists, without logging.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
