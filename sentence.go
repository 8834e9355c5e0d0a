package nmea

import (
	"encoding/hex"
	"strings"
)

// Sentence is one successfully decoded NMEA sentence. A Sentence is only
// ever returned with a verified checksum, a known talker and a supported
// message.
type Sentence struct {
	Kind    FrameKind
	Talker  Talker
	Message Message
}

// Decoder decodes sentences. It holds only configuration and is safe for
// concurrent use.
type Decoder struct {
	century       int
	laxTerminator bool
}

type Option func(*Decoder)

// WithCentury sets the base year added to two-digit ddmmyy years. The
// default is 2000.
func WithCentury(base int) Option {
	return func(d *Decoder) {
		d.century = base
	}
}

// WithLaxTerminator accepts sentences ending in a bare LF, or with no
// terminator at all, in addition to CRLF.
func WithLaxTerminator() Option {
	return func(d *Decoder) {
		d.laxTerminator = true
	}
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{century: 2000}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Parse decodes one sentence, including its leading '$' or '!' and its
// trailing "*hh\r\n", using the default decoder.
func Parse(line string) (Sentence, error) {
	return defaultDecoder.Decode(line)
}

// Verify checks the framing, checksum and terminator of a sentence without
// interpreting its fields.
func Verify(line string) error {
	return defaultDecoder.Verify(line)
}

// Checksum returns the XOR of all bytes in payload.
func Checksum(payload string) byte {
	var cs byte
	for i := 0; i < len(payload); i++ {
		cs ^= payload[i]
	}
	return cs
}

// Verify is like the package level Verify but honours the decoder's
// terminator setting.
func (d *Decoder) Verify(line string) error {
	_, _, err := d.frame(line)
	return err
}

func (d *Decoder) Decode(line string) (Sentence, error) {
	kind, payload, err := d.frame(line)
	if err != nil {
		return Sentence{}, err
	}

	if len(payload) < 2 {
		return Sentence{}, newError(StageTalker, ErrIncomplete, payload)
	}
	talker, ok := talkerCodes[payload[:2]]
	if !ok {
		return Sentence{}, newError(StageTalker, ErrUnknownTalker, payload[:2])
	}

	rest := payload[2:]
	if len(rest) < 3 {
		return Sentence{}, newError(StageMessage, ErrIncomplete, rest)
	}
	msgCode := rest[:3]
	decode, err := lookupDecoder(msgCode)
	if err != nil {
		return Sentence{}, err
	}
	fields, ok := strings.CutPrefix(rest[3:], ",")
	if !ok {
		e := newError(StageField, ErrFieldCount, rest[3:])
		e.Code = msgCode
		e.Field = 1
		return Sentence{}, e
	}

	r := newFieldReader(msgCode, fields, d.century)
	msg, err := decode(r)
	if err != nil {
		return Sentence{}, err
	}
	if !r.exhausted() {
		e := newError(StageField, ErrTrailingData, r.buf)
		e.Code = msgCode
		e.Field = r.field + 1
		return Sentence{}, e
	}

	return Sentence{Kind: kind, Talker: talker, Message: msg}, nil
}

// frame validates marker, checksum and terminator and returns the
// checksummed payload between the marker and the '*'.
func (d *Decoder) frame(line string) (FrameKind, string, error) {
	if line == "" {
		return 0, "", newError(StageFrame, ErrIncomplete, "")
	}
	var kind FrameKind
	switch line[0] {
	case '$':
		kind = Parametric
	case '!':
		kind = Encapsulated
	default:
		return 0, "", newError(StageFrame, ErrUnknownFrameMarker, line[:1])
	}

	payload, tail, ok := strings.Cut(line[1:], "*")
	if !ok {
		return 0, "", newError(StageFrame, ErrIncomplete, line)
	}

	if len(tail) < 2 {
		return 0, "", newError(StageChecksum, ErrIncomplete, tail)
	}
	want, err := hex.DecodeString(tail[:2])
	if err != nil {
		return 0, "", newError(StageChecksum, ErrInvalidChecksum, tail[:2])
	}
	if got := Checksum(payload); got != want[0] {
		return 0, "", newError(StageChecksum, ErrChecksumMismatch, tail[:2])
	}

	if err := d.terminator(tail[2:]); err != nil {
		return 0, "", err
	}
	return kind, payload, nil
}

func (d *Decoder) terminator(s string) error {
	switch {
	case s == "\r\n":
		return nil
	case d.laxTerminator && (s == "" || s == "\n"):
		return nil
	case s == "" || s == "\r":
		return newError(StageTerminator, ErrIncomplete, s)
	default:
		return newError(StageTerminator, ErrMalformedTerminator, s)
	}
}
