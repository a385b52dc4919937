package server

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gliderlabs/ssh"
	"github.com/rs/zerolog/log"

	"maze-level/internal/game"
	"maze-level/internal/render"
)

// SSHServer serves the sketch as truecolor ANSI to every SSH session.
type SSHServer struct {
	loop    *game.Loop
	sketch  *game.Sketch
	addr    string
	hostKey string

	server *ssh.Server
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr, hostKey string, loop *game.Loop, sketch *game.Sketch) *SSHServer {
	s := &SSHServer{
		loop:    loop,
		sketch:  sketch,
		addr:    addr,
		hostKey: hostKey,
	}
	s.server = &ssh.Server{
		Addr:    addr,
		Handler: s.handleSession,
	}
	return s
}

// Start begins listening for SSH connections. Blocks until the server stops.
func (s *SSHServer) Start() error {
	if err := s.server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Info().Str("addr", s.addr).Msg("SSH server listening")
	if err := s.server.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting sessions and waits for open ones to finish.
func (s *SSHServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	user := sess.User()
	logger := log.With().Str("user", user).Str("remote", sess.RemoteAddr().String()).Logger()

	id, frames := s.loop.Subscribe()
	logger.Info().Msg("session opened")
	defer func() {
		s.loop.Unsubscribe(id)
		logger.Info().Msg("session closed")
	}()

	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	engine := render.NewEngine(termW, termH)
	canvas := s.sketch.NewCanvas()

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.Reset)
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	quitCh := make(chan struct{})

	// Goroutine: read keys until quit or disconnect
	go func() {
		defer close(quitCh)
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil || isQuit(buf[:n]) {
				return
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
		}
	}()

	for {
		select {
		case <-quitCh:
			return
		case <-sess.Context().Done():
			return
		case _, ok := <-frames:
			if !ok {
				return
			}

			termMu.Lock()
			w, h := termW, termH
			termMu.Unlock()

			s.sketch.DrawScene(canvas)
			output := engine.Render(canvas, s.sketch.Label, w, h)
			if len(output) == 0 {
				continue
			}
			if _, err := io.WriteString(sess, output); err != nil {
				logger.Debug().Err(err).Msg("write frame")
				return
			}
		}
	}
}

// isQuit reports whether input contains q, Q, Ctrl-C or a bare Esc.
// Escape sequences such as arrow keys are skipped.
func isQuit(data []byte) bool {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case 0x1b:
			if i+1 < len(data) && (data[i+1] == '[' || data[i+1] == 'O') {
				i += 2
				continue
			}
			return true
		case 'q', 'Q', 3:
			return true
		}
	}
	return false
}
