package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"maze-level/internal/game"
	"maze-level/internal/server"
)

const (
	defaultAddr     = ":2222"
	defaultHTTPAddr = ":8080"
	hostKeyPath     = "host_key"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	mapPath := flag.String("map", "", "JSON map file (default: built-in maze)")
	tileSize := flag.Int("tile", game.DefaultTileSize, "tile size in pixels")
	fps := flag.Int("fps", game.DefaultFPS, "redraw rate in frames per second")
	httpAddr := flag.String("http", defaultHTTPAddr, "HTTP listen address (empty disables)")
	label := flag.String("label", game.DefaultLabel, "label drawn with the level")
	lenient := flag.Bool("lenient", false, "accept tile codes outside the tile set")
	flag.Parse()

	// Generate host key if it doesn't exist
	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatal().Err(err).Msg("host key")
	}

	sketch, name, err := game.Setup(game.Config{
		MapPath:  *mapPath,
		TileSize: *tileSize,
		Label:    *label,
		Lenient:  *lenient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("setup level")
	}
	log.Info().
		Str("map", name).
		Int("rows", sketch.Level.RowsCount()).
		Int("cols", sketch.Level.Columns()).
		Int("tile", sketch.Level.TileSize()).
		Msg("level ready")

	loop := game.NewLoop(*fps)
	go loop.Run()
	defer loop.Stop()

	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	errCh := make(chan error, 2)
	sshServer := server.NewSSHServer(listenAddr, hostKeyPath, loop, sketch)
	go func() { errCh <- sshServer.Start() }()
	log.Info().Msgf("connect with: ssh -t -p %s localhost", listenAddr[1:])

	var httpServer *server.HTTPServer
	if *httpAddr != "" {
		httpServer = server.NewHTTPServer(*httpAddr, name, loop, sketch)
		go func() { errCh <- httpServer.Start() }()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("terminating")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	loop.Stop()
	if err := sshServer.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("ssh shutdown")
	}
	if httpServer != nil {
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("http shutdown")
		}
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Info().Str("path", path).Msg("generating new host key")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
