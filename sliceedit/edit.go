// Copyright 2023 Jesus Ruiz. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package sliceedit extends the functionalities of rsc.io/edit to
// queue edits at offsets of an original byte slice and apply them all at once.
// It requires a single allocation for many operations.
package sliceedit

import (
	"bytes"

	"rsc.io/edit"
)

// A Buffer is a queue of edits to apply to a given byte slice.
// Offsets always refer to the original data, not to the result of previous edits.
type Buffer struct {
	ed  edit.Buffer
	buf []byte
}

// NewBuffer returns a new buffer to accumulate changes to an initial data slice.
// The returned buffer maintains a reference to the data, so the caller must ensure
// the data is not modified until after the Buffer is done being used.
func NewBuffer(buf []byte) *Buffer {
	b := &Buffer{}
	b.buf = buf // Just for our internal queries, we do not modify anything in it
	b.ed = *edit.NewBuffer(buf)
	return b
}

// Replace replaces the original bytes in [start, end) with new.
func (b *Buffer) Replace(start, end int, new string) {
	b.ed.Replace(start, end, new)
}

// Insert inserts new at position pos of the original data.
func (b *Buffer) Insert(pos int, new string) {
	b.ed.Insert(pos, new)
}

// InsertBeforeLast inserts new right before the last occurrence of marker.
// It returns false when the marker is not present and nothing was queued.
func (b *Buffer) InsertBeforeLast(marker string, new string) bool {
	i := bytes.LastIndex(b.buf, []byte(marker))
	if i == -1 {
		return false
	}
	b.Insert(i, new)
	return true
}

// Bytes returns a new byte slice containing the original data
// with the queued edits applied.
func (b *Buffer) Bytes() []byte {
	return b.ed.Bytes()
}

// String returns a string containing the original data
// with the queued edits applied.
func (b *Buffer) String() string {
	return string(b.ed.Bytes())
}
