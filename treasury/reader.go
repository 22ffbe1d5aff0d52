// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

// Reader is a streaming, cloneable view over one response group: it holds a
// plain pointer to the group plus a cursor into its coins, and never copies
// or owns the group's contents.
type Reader struct {
	group  *ResponseGroup
	cursor int
	done   bool
}

// NewReader returns a Reader positioned at the start of g's output list.
func NewReader(g *ResponseGroup) *Reader {
	return &Reader{group: g}
}

// Clone returns an independent copy of r, starting at r's current cursor.
func (r *Reader) Clone() *Reader {
	return &Reader{group: r.group, cursor: r.cursor, done: r.done}
}

// Reset rewinds r to the start of the group.
func (r *Reader) Reset() {
	r.cursor = 0
	r.done = false
}

// NextOutput returns the next output in stored order, or ok=false once
// every coin has been consumed.
func (r *Reader) NextOutput() (*Output, bool) {
	if r.cursor >= len(r.group.Coins) {
		return nil, false
	}
	out := &r.group.Coins[r.cursor].Output
	r.cursor++
	return out, true
}

// Kernel returns the group's single kernel once every output has been
// consumed; it is the reader's terminal element. Calling it before
// exhausting outputs is a caller error and returns ok=false.
func (r *Reader) Kernel() (*Kernel, bool) {
	if r.cursor < len(r.group.Coins) || r.done {
		return nil, false
	}
	r.done = true
	return &r.group.Kernel, true
}

// NettoSize returns the serialized size, in bytes, of the group's outputs
// plus kernel as they would sit inside a block body — excluding any body
// framing overhead, which the packer accounts for separately.
func (r *Reader) NettoSize() int {
	return nettoSize(r.group)
}

const (
	outputWireSize = 32 + 8 + 1 + 1 // commitment + incubation + public + coinbase
	sigWireSize    = 32 + 32
	kernelWireSize = 8 + 8 + 8 + 32 + sigWireSize // fee + height.min + height.max + excess + sig
)

func nettoSize(g *ResponseGroup) int {
	return len(g.Coins)*(outputWireSize+sigWireSize) + kernelWireSize
}
