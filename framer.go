package nmea

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLength bounds a candidate sentence, terminator included. The
// protocol limit is 82 characters; receivers with proprietary extensions
// run longer, but nothing legitimate comes close to this.
const MaxLineLength = 1024

// Framer splits a byte stream into candidate sentences. It does not
// validate them; pass each one to Parse, Decode or Verify.
type Framer struct {
	br        *bufio.Reader
	discarded int
}

func NewFramer(r io.Reader) *Framer {
	return &Framer{br: bufio.NewReaderSize(r, MaxLineLength)}
}

// Discarded returns the number of overlong lines dropped so far.
func (f *Framer) Discarded() int {
	return f.discarded
}

// Read returns the next candidate sentence, from its '$' or '!' marker up
// to and including the line feed. Bytes before the marker are skipped. A
// final line without a line feed is returned as is, and the following call
// returns io.EOF.
func (f *Framer) Read() (string, error) {
	var line []byte
	state := 0
	for {
		switch state {
		case 0:
			// Hunt for a start marker.
			c, err := f.br.ReadByte()
			if err != nil {
				return "", err
			}
			if c == '$' || c == '!' {
				line = append(line[:0], c)
				state = 1
			}

		case 1:
			// Collect the rest of the line.
			chunk, err := f.br.ReadSlice('\n')
			switch {
			case errors.Is(err, bufio.ErrBufferFull):
				f.discarded++
				state = 2
				continue
			case errors.Is(err, io.EOF):
				line = append(line, chunk...)
				if len(line) > 1 && len(line) <= MaxLineLength {
					return string(line), nil
				}
				return "", io.EOF
			case err != nil:
				return "", err
			}
			line = append(line, chunk...)
			if len(line) > MaxLineLength {
				f.discarded++
				state = 0
				continue
			}
			return string(line), nil

		case 2:
			// Skip the remainder of an overlong line.
			_, err := f.br.ReadSlice('\n')
			if errors.Is(err, bufio.ErrBufferFull) {
				continue
			}
			if err != nil {
				return "", err
			}
			state = 0
		}
	}
}
