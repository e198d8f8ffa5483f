package main

import (
	"os"

	"github.com/Garsondee/memory-cards/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	g, err := game.New(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("init game")
	}

	ebiten.SetWindowTitle("Cards")
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)
	log.Info().Int("cards", cfg.CardCount).Int("columns", cfg.Columns).Int("tps", cfg.TPS).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
