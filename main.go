package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

const usage = "usage: hangman [play|serve]"

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	mode := "play"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "play":
		// Keep log lines off stdout, which belongs to the game.
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		code := play(ctx, cfg)
		stop()
		os.Exit(code)
	case "serve":
		serve(ctx, cfg)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

// loadDictionary reads DICTIONARY_FILE when set, otherwise the embedded list.
// On failure the returned dictionary is empty and accepts every word.
func loadDictionary(cfg *config.Config) (*words.Dictionary, error) {
	if cfg.DictionaryFile != "" {
		return words.LoadDictionary(cfg.DictionaryFile)
	}
	return words.EmbeddedDictionary()
}

func play(ctx context.Context, cfg *config.Config) int {
	dict, dictErr := loadDictionary(cfg)

	p := console.NewPlayer(os.Stdin, os.Stdout, dict, console.Options{
		MaxWrongGuesses: cfg.MaxWrongGuesses,
		HiddenMarker:    cfg.HiddenMarker,
		ClearScreen:     term.IsTerminal(int(os.Stdin.Fd())),
	})
	if dictErr != nil {
		log.Warn().Err(dictErr).Msg("dictionary unavailable, accepting any word")
		p.DictionaryFailed(dictErr)
	}

	rounds, err := game.PlayUntilQuit(ctx, p)
	switch {
	case err == nil:
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Debug().Err(err).Msg("stopped")
	default:
		log.Error().Err(err).Msg("game aborted")
		return 1
	}
	log.Debug().Int("rounds", rounds).Msg("bye")
	return 0
}

func serve(ctx context.Context, cfg *config.Config) {
	dict, err := loadDictionary(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("dictionary unavailable, accepting any word")
	}
	log.Info().Int("words", dict.Len()).Msg("dictionary loaded")

	srv := httpserver.New(store.NewMemoryStore(), dict, cfg)
	log.Info().Str("port", cfg.Port).Msg("starting hangman server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
