package extract

import (
	"bufio"
	"io"
	"strings"
)

// Reader streams the extractor's output for an underlying reader.
// Line terminators are preserved so the output has the same line count as the input.
type Reader struct {
	src   *bufio.Reader
	state State
	buf   []byte
	err   error
}

// NewReader returns a Reader that masks everything outside script regions of src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(src), state: Ignoring}
}

// State returns the extractor state after the lines read so far.
func (r *Reader) State() State {
	return r.state
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		line, err := r.src.ReadString('\n')
		if line != "" {
			body, eol := splitEOL(line)
			var out string
			r.state, out = Step(r.state, body)
			r.buf = append(r.buf[:0], out...)
			r.buf = append(r.buf, eol...)
		}
		if err != nil {
			r.err = err
		}
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Source returns src unchanged when enabled is false, and an extracting Reader otherwise.
func Source(src io.Reader, enabled bool) io.Reader {
	if !enabled {
		return src
	}
	return NewReader(src)
}

func splitEOL(line string) (string, string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
