// File: server.go
// Title: TCP Shell Server
// Description: Accepts TCP connections and runs one shell session per
//              connection. Each session gets its own context value and
//              command registration via a session factory, so state is
//              never shared between clients.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package server

import (
	"errors"
	"net"
	"sync"

	"github.com/google/uuid"

	gameshell "github.com/Omen-of-Aecio/gameshell"
	"github.com/Omen-of-Aecio/gameshell/consumer"
	gsherror "github.com/Omen-of-Aecio/gameshell/core/error"
	"github.com/Omen-of-Aecio/gameshell/core/log"
	"github.com/Omen-of-Aecio/gameshell/evaluator"
	"github.com/Omen-of-Aecio/gameshell/mapping"
)

// SessionFactory builds the context value and the command set for one
// session. It is called once per accepted connection with the session
// id, so implementations may close over shared state or create fresh
// state per client.
type SessionFactory[C any] func(sessionID string) (C, []mapping.Spec[evaluator.Value, C])

// Options configures server behavior. Zero values fall back to the
// package defaults.
type Options struct {
	Address           string
	BufferSize        int
	MaxRecursionDepth int
	Logger            *log.Logger
}

// DefaultAddress is used when Options.Address is blank.
const DefaultAddress = "127.0.0.1:32124"

// Server accepts TCP connections and speaks the shell protocol on
// each of them.
type Server[C any] struct {
	factory  SessionFactory[C]
	options  Options
	logger   *log.Logger
	listener net.Listener
	sessions map[string]net.Conn
	wg       sync.WaitGroup
	mutex    sync.Mutex
	closed   bool
}

// New creates a server. The factory must not be nil.
func New[C any](factory SessionFactory[C], opts Options) (*Server[C], error) {
	if factory == nil {
		return nil, gsherror.New("session factory must not be nil").
			WithCode(gsherror.CodeInvalidConfig)
	}
	if opts.Address == "" {
		opts.Address = DefaultAddress
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
	return &Server[C]{
		factory:  factory,
		options:  opts,
		logger:   opts.Logger,
		sessions: make(map[string]net.Conn),
	}, nil
}

// ListenAndServe listens on the configured address and serves until
// Close is called or the listener fails.
func (s *Server[C]) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.options.Address)
	if err != nil {
		return gsherror.Wrap(err, "failed to listen").
			WithCode(gsherror.CodeConnectionFailed).
			WithDetail("address", s.options.Address)
	}
	return s.Serve(ln)
}

// Serve accepts connections from ln until Close is called. It takes
// ownership of the listener.
func (s *Server[C]) Serve(ln net.Listener) error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		ln.Close()
		return gsherror.New("server is closed").WithCode(gsherror.CodeSessionClosed)
	}
	s.listener = ln
	s.mutex.Unlock()

	s.logger.Info("server listening", log.Fields{"address": ln.Addr().String()})

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return gsherror.Wrap(err, "accept failed").
				WithCode(gsherror.CodeConnectionFailed)
		}
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// Addr returns the listener address, or nil before Serve has been
// called. Useful when listening on port 0.
func (s *Server[C]) Addr() net.Addr {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close stops accepting, drops all open sessions and waits for their
// goroutines to finish.
func (s *Server[C]) Close() error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return nil
	}
	s.closed = true
	ln := s.listener
	conns := make([]net.Conn, 0, len(s.sessions))
	for _, conn := range s.sessions {
		conns = append(conns, conn)
	}
	s.mutex.Unlock()

	var err error
	if ln != nil {
		err = ln.Close()
	}
	for _, conn := range conns {
		conn.Close()
	}
	s.wg.Wait()
	return err
}

// SessionCount reports the number of live sessions.
func (s *Server[C]) SessionCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.sessions)
}

func (s *Server[C]) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	sessionID := uuid.NewString()
	logger := s.logger.WithFields(log.Fields{
		"session_id": sessionID,
		"remote":     conn.RemoteAddr().String(),
	})

	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return
	}
	s.sessions[sessionID] = conn
	s.mutex.Unlock()
	defer func() {
		s.mutex.Lock()
		delete(s.sessions, sessionID)
		s.mutex.Unlock()
	}()

	logger.Info("session started")

	ctx, specs := s.factory(sessionID)
	shell := gameshell.New(ctx, conn, conn,
		gameshell.WithBufferSize[C](s.options.BufferSize),
		gameshell.WithMaxRecursionDepth[C](s.options.MaxRecursionDepth),
		gameshell.WithLogger[C](logger),
	)
	if err := shell.RegisterMany(specs); err != nil {
		logger.Error("command registration failed", log.Fields{"error": err.Error()})
		return
	}

	err := shell.Run()
	switch {
	case err == nil:
		logger.Info("session ended")
	case errors.Is(err, consumer.ErrBufferFull):
		logger.Warn("session dropped, statement exceeded buffer")
	default:
		logger.Info("session ended with error", log.Fields{"error": err.Error()})
	}
}
