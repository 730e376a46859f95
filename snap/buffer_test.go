package snap

import "testing"

func TestByteRenderer(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"Strings and bytes", []any{"<p>", []byte("x"), "</p>"}, "<p>x</p>"},
		{"Integers", []any{"h", 2, ":", -1}, "h2:-1"},
		{"Other values in default format", []any{1.5, " ", true, " ", 'a'}, "1.5 true 97"},
		{"No arguments", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var br ByteRenderer
			br.Render(tt.args...)
			if got := br.String(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			br.Renderln()
			if got := string(br.Bytes()); got != tt.want+"\n" {
				t.Errorf("Renderln() = %q, want %q", got, tt.want+"\n")
			}
		})
	}
}
