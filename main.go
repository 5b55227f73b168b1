package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordle-helper",
	Short: "Interactive five-letter word puzzle assistant",
	Long: `wordle-helper narrows down the possible answers of a five-letter
word-guessing game from the feedback you report after each guess.

Variants:
  helper  filter a fixed local word list round by round
  solve   query the Datamuse ranked-word service for the best next guess
  serve   expose the same engine as an HTTP API`,
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
