package snap

import (
	"bytes"
	"fmt"
	"strconv"
)

// ByteRenderer accumulates output fragments without intermediate string concatenation.
// The zero value is ready to use.
type ByteRenderer struct {
	buf bytes.Buffer
}

// Render appends the arguments in order. Strings, byte slices and integers are
// written directly, anything else in its default format.
func (br *ByteRenderer) Render(args ...any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			br.buf.WriteString(v)
		case []byte:
			br.buf.Write(v)
		case int:
			br.buf.WriteString(strconv.Itoa(v))
		default:
			fmt.Fprint(&br.buf, v)
		}
	}
}

// Renderln is like Render but appends a newline at the end.
func (br *ByteRenderer) Renderln(args ...any) {
	br.Render(args...)
	br.buf.WriteByte('\n')
}

// Bytes returns the accumulated contents. The slice aliases the internal buffer.
func (br *ByteRenderer) Bytes() []byte {
	return br.buf.Bytes()
}

func (br *ByteRenderer) String() string {
	return br.buf.String()
}
