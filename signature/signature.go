// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package signature

import (
	"errors"
	"strings"
	"sync"
)

// ErrNotImage rejects signature payloads that are not image data URIs.
var ErrNotImage = errors.New("signature must be a data:image/ URI")

// Capability is the boundary to the signature widget. The rest of the
// application touches signatures only through these four operations.
type Capability interface {
	Clear()
	IsEmpty() bool
	Export() string
	Import(dataURI string) error
}

// Pad holds the exported signature image for the current inspection. The
// actual drawing surface lives in the browser; the pad only keeps the
// data-URI export it sends up.
type Pad struct {
	mu   sync.Mutex
	data string
}

// NewPad returns an empty pad.
func NewPad() *Pad {
	return &Pad{}
}

// Clear discards the current signature.
func (p *Pad) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = ""
}

// IsEmpty reports whether a signature is present.
func (p *Pad) IsEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data == ""
}

// Export returns the signature as a data URI, or "" when empty.
func (p *Pad) Export() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// Import replaces the signature. Only data:image/ URIs are accepted;
// anything else in stored data is treated as no signature.
func (p *Pad) Import(dataURI string) error {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return ErrNotImage
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = dataURI
	return nil
}
