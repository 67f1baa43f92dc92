// File: websocket.go
// Title: WebSocket Shell Transport
// Description: Bridges WebSocket connections onto the shell protocol.
//              Each text message from the browser is fed to the
//              session's statement stream and each response is sent
//              back as one text message.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	gameshell "github.com/Omen-of-Aecio/gameshell"
	"github.com/Omen-of-Aecio/gameshell/consumer"
	gsherror "github.com/Omen-of-Aecio/gameshell/core/error"
	"github.com/Omen-of-Aecio/gameshell/core/log"
	"github.com/Omen-of-Aecio/gameshell/evaluator"
)

// WebSocketHandler serves shell sessions over WebSocket. It is an
// http.Handler, so mounting it on a mux and path is up to the caller.
type WebSocketHandler[C any] struct {
	factory  SessionFactory[C]
	options  Options
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a WebSocket transport with the same
// session semantics as the TCP server.
func NewWebSocketHandler[C any](factory SessionFactory[C], opts Options) (*WebSocketHandler[C], error) {
	if factory == nil {
		return nil, gsherror.New("session factory must not be nil").
			WithCode(gsherror.CodeInvalidConfig)
	}
	if opts.BufferSize == 0 {
		opts.BufferSize = gameshell.DefaultBufferSize
	}
	if opts.MaxRecursionDepth == 0 {
		opts.MaxRecursionDepth = evaluator.DefaultMaxRecursionDepth
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	return &WebSocketHandler[C]{
		factory: factory,
		options: opts,
		logger:  opts.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Sessions carry no credentials, any origin may connect.
				return true
			},
		},
	}, nil
}

// ServeHTTP upgrades the request and runs a shell session until the
// peer disconnects.
func (h *WebSocketHandler[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", log.Fields{"error": err.Error()})
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	logger := h.logger.WithFields(log.Fields{
		"session_id": sessionID,
		"remote":     conn.RemoteAddr().String(),
	})
	logger.Info("websocket session started")

	stream := &websocketStream{conn: conn}
	ctx, specs := h.factory(sessionID)
	shell := gameshell.New(ctx, stream, stream,
		gameshell.WithBufferSize[C](h.options.BufferSize),
		gameshell.WithMaxRecursionDepth[C](h.options.MaxRecursionDepth),
		gameshell.WithLogger[C](logger),
	)
	if err := shell.RegisterMany(specs); err != nil {
		logger.Error("command registration failed", log.Fields{"error": err.Error()})
		return
	}

	err = shell.Run()
	switch {
	case err == nil:
		logger.Info("websocket session ended")
	case errors.Is(err, consumer.ErrBufferFull):
		logger.Warn("websocket session dropped, statement exceeded buffer")
	default:
		logger.Info("websocket session ended with error", log.Fields{"error": err.Error()})
	}
}

// websocketStream adapts a websocket connection to the byte stream the
// shell consumes. Reads drain text messages, writes send one text
// message per response.
type websocketStream struct {
	conn    *websocket.Conn
	pending []byte
}

func (ws *websocketStream) Read(p []byte) (int, error) {
	for len(ws.pending) == 0 {
		kind, data, err := ws.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return 0, io.EOF
			}
			return 0, err
		}
		if kind != websocket.TextMessage {
			continue
		}
		ws.pending = data
	}
	n := copy(p, ws.pending)
	ws.pending = ws.pending[n:]
	return n, nil
}

func (ws *websocketStream) Write(p []byte) (int, error) {
	if err := ws.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}
