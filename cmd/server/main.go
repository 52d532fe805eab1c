// maze-server serves the raycaster over SSH. Every connection plays its own
// copy of the maze; sessions share nothing but the loaded textures.
//
//	go build -o maze-server ./cmd/server
//	./maze-server [-port 2222] [-key server_host_key] [-config maze.yaml]
//
// Connect with a true-color terminal:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/semaphore"

	"maze-raycaster/internal/config"
	"maze-raycaster/internal/game"
	"maze-raycaster/internal/maze"
	internalssh "maze-raycaster/internal/ssh"
	"maze-raycaster/internal/texture"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	cfgFile := flag.String("config", "", "Path to a YAML config file")
	maxSessions := flag.Int64("max-sessions", 16, "Maximum concurrent sessions")
	flag.Parse()

	if err := run(*port, *keyFile, *cfgFile, *maxSessions); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(port int, keyFile, cfgFile string, maxSessions int64) error {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := config.NewLogger(os.Stderr, lvl)

	level, err := game.LoadLevel(cfg, log)
	if err != nil {
		return err
	}
	atlas, err := game.LoadAtlas(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(keyFile, log)
	if err != nil {
		return err
	}

	h := &handler{
		cfg:   cfg,
		level: level,
		atlas: atlas,
		log:   log,
		slots: semaphore.NewWeighted(maxSessions),
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	log.Info().Int("port", port).Msg("maze server listening")
	return srv.ListenAndServe()
}

// ─── sessions ───────────────────────────────────────────────────────────────

// handler runs one independent game per SSH session.
type handler struct {
	cfg   *config.Config
	level *maze.Level
	atlas *texture.Atlas
	log   zerolog.Logger
	slots *semaphore.Weighted
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the game so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	log := h.sessionLogger(s)

	if !h.slots.TryAcquire(1) {
		log.Warn().Msg("server full")
		fmt.Fprintln(s, "The server is full, try again later.")
		return
	}
	defer h.slots.Release(1)

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("screen setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	log.Info().Msg("connected")
	game.New(screen, game.Options{
		Config: h.cfg,
		Atlas:  h.atlas,
		Level:  h.level,
		Logger: log,
	}).Run()
	log.Info().Msg("disconnected")
}

func (h *handler) sessionLogger(s gossh.Session) zerolog.Logger {
	return h.log.With().
		Str("session", uuid.NewString()).
		Str("user", s.User()).
		Str("remote", s.RemoteAddr().String()).
		Logger()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log zerolog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info().Str("path", path).Msg("loaded host key")
			return signer, nil
		}
	}

	log.Info().Str("path", path).Msg("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if block, err := xssh.MarshalPrivateKey(key, "maze-raycaster server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("host key not saved")
		}
	}
	return signer, nil
}
