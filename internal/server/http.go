package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"maze-level/internal/game"
	"maze-level/internal/render"
)

// LevelInfo is the /level.json payload.
type LevelInfo struct {
	Name        string           `json:"name"`
	Rows        int              `json:"rows"`
	Cols        int              `json:"cols"`
	TileSize    int              `json:"tileSize"`
	PixelWidth  int              `json:"pixelWidth"`
	PixelHeight int              `json:"pixelHeight"`
	Commands    []render.Command `json:"commands"`
}

// FrameMessage is sent to websocket clients on every loop frame.
type FrameMessage struct {
	Tick     uint64           `json:"tick"`
	Commands []render.Command `json:"commands"`
}

const writeWait = time.Second

// HTTPServer serves the sketch as PNG, as a draw-command list, and as a
// websocket stream of frames.
type HTTPServer struct {
	name     string
	sketch   *game.Sketch
	loop     *game.Loop
	upgrader websocket.Upgrader
	server   *http.Server
}

// NewHTTPServer creates a server for addr. name labels the level in /level.json.
func NewHTTPServer(addr, name string, loop *game.Loop, sketch *game.Sketch) *HTTPServer {
	s := &HTTPServer{
		name:   name,
		sketch: sketch,
		loop:   loop,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16384,
		},
	}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the request router.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /level.png", s.handlePNG)
	mux.HandleFunc("GET /level.json", s.handleJSON)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// Start listens on the configured address. Blocks until the server stops.
func (s *HTTPServer) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handlePNG(w http.ResponseWriter, r *http.Request) {
	canvas := s.sketch.NewCanvas()
	s.sketch.Draw(canvas)

	w.Header().Set("Content-Type", "image/png")
	if err := canvas.EncodePNG(w); err != nil {
		log.Error().Err(err).Msg("serve level.png")
	}
}

func (s *HTTPServer) handleJSON(w http.ResponseWriter, r *http.Request) {
	var rec render.Recorder
	s.sketch.Draw(&rec)

	l := s.sketch.Level
	info := LevelInfo{
		Name:        s.name,
		Rows:        l.RowsCount(),
		Cols:        l.Columns(),
		TileSize:    l.TileSize(),
		PixelWidth:  l.PixelWidth(),
		PixelHeight: l.PixelHeight(),
		Commands:    rec.Commands,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		log.Error().Err(err).Msg("serve level.json")
	}
}

func (s *HTTPServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Debug().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	logger := log.With().Str("remote", r.RemoteAddr).Logger()
	id, frames := s.loop.Subscribe()
	logger.Info().Msg("websocket opened")
	defer func() {
		s.loop.Unsubscribe(id)
		logger.Info().Msg("websocket closed")
	}()

	// Reader: the client sends nothing we use, but reading surfaces the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var rec render.Recorder
	for {
		select {
		case <-closed:
			return
		case f, ok := <-frames:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(writeWait))
				return
			}

			rec.Reset()
			s.sketch.Draw(&rec)

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(FrameMessage{Tick: f.Tick, Commands: rec.Commands}); err != nil {
				logger.Debug().Err(err).Msg("write frame")
				return
			}
		}
	}
}
