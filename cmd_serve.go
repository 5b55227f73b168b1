// cmd_serve.go
//
// The `serve` subcommand: exposes the solving engine as an HTTP API with
// in-memory sessions, mirroring the interactive flows (new session →
// feedback rounds → candidates / ranked suggestion).

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/datamuse"
	"github.com/robalobadob/wordle-helper/internal/httpserver"
	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assistant as an HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := words.Init(); err != nil {
			return fmt.Errorf("load word list: %w", err)
		}

		mem := store.NewMemoryStore()
		ranker := datamuse.NewClient(getEnv("DATAMUSE_URL", datamuse.DefaultBaseURL))
		srv := httpserver.New(mem, ranker)

		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Int("candidates", words.Stats()).Msg("starting wordle-helper api")
		return srv.Start(":" + port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
