// Package textline reads newline-delimited text one line at a time with no
// limit on line length.
package textline

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Reader yields the lines of an io.Reader without their "\n" or "\r\n"
// terminator. A final line without a terminator is still yielded.
//
// Its Next/Text/Err loop mirrors bufio.Scanner, but a line of any length is
// returned whole instead of stopping the loop with bufio.ErrTooLong.
type Reader struct {
	br   *bufio.Reader
	line string
	err  error
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at end of input or on a
// read error; Err tells the two apart.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	line, err := r.br.ReadString('\n')
	if err != nil {
		r.err = err
		if !errors.Is(err, io.EOF) || line == "" {
			r.line = ""
			return false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	r.line = strings.TrimSuffix(line, "\r")
	return true
}

// Text returns the line read by the last call to Next.
func (r *Reader) Text() string { return r.line }

// Err returns the first non-EOF read error.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}
	return r.err
}
