// File: client.go
// Title: Shell Protocol Client
// Description: Small TCP client for talking to a shell server. Sends
//              one statement at a time and collects the unframed
//              response with a read deadline.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package client

import (
	"net"
	"strings"
	"sync"
	"time"

	gsherror "github.com/Omen-of-Aecio/gameshell/core/error"
	"github.com/Omen-of-Aecio/gameshell/core/log"
)

// Options configures client behavior. Zero values fall back to the
// package defaults.
type Options struct {
	Address        string
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	Logger         *log.Logger
}

// Client is a connection to a shell server. It is safe for concurrent
// use; statements are serialized on the wire.
type Client struct {
	conn    net.Conn
	options Options
	logger  *log.Logger
	mutex   sync.Mutex
}

// EnvelopeErr prefixes responses that report a failure.
const EnvelopeErr = "Err: "

// New creates a client. Call Connect before sending statements.
func New(opts Options) (*Client, error) {
	if opts.Address == "" {
		return nil, gsherror.New("address must not be blank").
			WithCode(gsherror.CodeInvalidConfig)
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 10 * time.Second
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	return &Client{
		options: opts,
		logger:  opts.Logger,
	}, nil
}

// Connect dials the server.
func (c *Client) Connect() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.conn != nil {
		return nil
	}
	conn, err := net.DialTimeout("tcp", c.options.Address, c.options.DialTimeout)
	if err != nil {
		return gsherror.Wrap(err, "failed to connect").
			WithCode(gsherror.CodeConnectionFailed).
			WithDetail("address", c.options.Address)
	}
	c.logger.Debug("connected", log.Fields{"address": c.options.Address})
	c.conn = conn
	return nil
}

// Run sends one statement and returns the server's response text. A
// missing trailing newline is added. The response is drained with a
// short read deadline since the protocol carries no response framing.
func (c *Client) Run(statement string) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.conn == nil {
		return "", gsherror.New("not connected").
			WithCode(gsherror.CodeSessionClosed)
	}
	if !strings.HasSuffix(statement, "\n") {
		statement += "\n"
	}

	c.conn.SetDeadline(time.Now().Add(c.options.RequestTimeout))
	if _, err := c.conn.Write([]byte(statement)); err != nil {
		return "", gsherror.Wrap(err, "write failed").
			WithCode(gsherror.CodeConnectionFailed)
	}

	buf := make([]byte, 4096)
	n, err := c.conn.Read(buf)
	if err != nil {
		return "", gsherror.Wrap(err, "read failed").
			WithCode(gsherror.CodeConnectionFailed)
	}
	response := string(buf[:n])

	// The response to one statement arrives in one burst; keep reading
	// only while more bytes are immediately available.
	for n == len(buf) {
		c.conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
		n, err = c.conn.Read(buf)
		if err != nil {
			break
		}
		response += string(buf[:n])
	}
	return response, nil
}

// IsError reports whether a response text carries the failure prefix.
func IsError(response string) bool {
	return strings.HasPrefix(response, EnvelopeErr)
}

// Close drops the connection. The client may Connect again afterwards.
func (c *Client) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
