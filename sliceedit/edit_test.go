// Copyright 2023 Jesus Ruiz. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package sliceedit

import "testing"

func TestBuffer(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		edits func(b *Buffer)
		want  string
	}{
		{
			name:  "No edits",
			data:  "abc",
			edits: func(b *Buffer) {},
			want:  "abc",
		},
		{
			name: "Offsets refer to the original",
			data: "one two three",
			edits: func(b *Buffer) {
				b.Replace(0, 3, "1")
				b.Replace(8, 13, "3")
				b.Insert(4, "[")
				b.Insert(7, "]")
			},
			want: "1 [two] 3",
		},
		{
			name: "Before last marker",
			data: "<p></body></p></body>",
			edits: func(b *Buffer) {
				b.InsertBeforeLast("</body>", "X")
			},
			want: "<p></body></p>X</body>",
		},
		{
			name: "Missing marker",
			data: "<p></p>",
			edits: func(b *Buffer) {
				if b.InsertBeforeLast("</body>", "X") {
					t.Errorf("InsertBeforeLast() found a missing marker")
				}
			},
			want: "<p></p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer([]byte(tt.data))
			tt.edits(b)
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := string(b.Bytes()); got != tt.want {
				t.Errorf("Bytes() = %q, want %q", got, tt.want)
			}
		})
	}
}
