// File: consumer.go
// Title: Incremental Byte Consumer Loop
// Description: Implements a fixed-buffer consume/validate/process loop
//              over a byte stream of unknown size and timing.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package consumer turns an unframed byte stream into validated
// chunks.
//
// Incoming bytes accumulate in a fixed-size buffer and each byte is
// passed through a caller-defined validator. Once the validator
// declares the accumulated bytes ready, they are handed to the
// caller's processor as one chunk and dropped from the buffer; bytes
// the validator declares invalid are dropped without processing. The
// fixed buffer caps memory regardless of what the stream sends.
package consumer

import (
	"errors"
	"io"
)

// ErrBufferFull reports that a statement outgrew the accumulation
// buffer. The stream cannot be resynchronized afterwards, so the
// caller should drop the connection.
var ErrBufferFull = errors.New("internal buffer is full")

// Validation is the verdict on the bytes accumulated so far.
type Validation int

const (
	// ValidationUnready means the chunk is incomplete; keep consuming.
	ValidationUnready Validation = iota
	// ValidationReady hands the accumulated bytes to Process and
	// resets the accumulation.
	ValidationReady
	// ValidationDiscard drops the accumulated bytes without
	// processing.
	ValidationDiscard
	// ValidationStop ends the run loop.
	ValidationStop
)

// Consumer is the set of callbacks driven by Run.
type Consumer interface {
	// Consume fills output with available bytes and returns how many
	// were written. Returning 0 or io.EOF ends the run cleanly; any
	// other error aborts it.
	Consume(output []byte) (int, error)

	// Validate judges the stream one byte at a time. As soon as it
	// returns ValidationReady, Process runs on the accumulated bytes.
	Validate(b byte) Validation

	// Process handles one validated chunk. A non-nil error aborts the
	// run and is returned from Run.
	Process(input []byte) error
}

// Run drives the consumer until the stream ends, the consumer stops
// it, or an error occurs. buf bounds how large a single chunk can
// get; a chunk that outgrows it aborts the run with ErrBufferFull.
func Run(c Consumer, buf []byte) error {
	begin, shift := 0, 0
	for {
		// Compact: drop everything before shift, keep the incomplete
		// tail at the front of the buffer.
		copy(buf, buf[shift:begin])
		begin -= shift
		shift = 0

		if begin == len(buf) {
			return ErrBufferFull
		}

		n, err := c.Consume(buf[begin:])
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if n == 0 {
			return nil
		}

		chunk := buf[begin : begin+n]
		for _, b := range chunk {
			begin++
			switch c.Validate(b) {
			case ValidationDiscard:
				shift = begin
			case ValidationReady:
				if err := c.Process(buf[shift:begin]); err != nil {
					return err
				}
				shift = begin
			case ValidationStop:
				return nil
			case ValidationUnready:
			}
		}
	}
}
