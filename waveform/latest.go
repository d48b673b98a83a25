// SPDX-License-Identifier: EPL-2.0

package waveform

import "sync/atomic"

// Latest is a single-slot, lock-free handoff for visualization buffers.
//
// The audio callback thread publishes each converted buffer with Store; the
// render thread picks up the most recent one with Load or Take. Older
// buffers are simply replaced, which is the desired behavior for a
// visualization: only the newest frame matters.
//
// The zero value is ready to use. Publish and Load sides may each be a
// different goroutine; neither side blocks.
type Latest struct {
	slot atomic.Pointer[[]byte]
}

// Store publishes buf as the latest buffer, replacing any unconsumed one.
// The caller must not modify buf after storing it.
func (l *Latest) Store(buf []byte) {
	l.slot.Store(&buf)
}

// Load returns the most recently stored buffer without consuming it,
// or nil when nothing has been stored yet.
func (l *Latest) Load() []byte {
	p := l.slot.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Take returns the most recently stored buffer and clears the slot, so a
// second Take before the next Store returns nil. Use it when each buffer
// should be rendered at most once.
func (l *Latest) Take() []byte {
	p := l.slot.Swap(nil)
	if p == nil {
		return nil
	}
	return *p
}
