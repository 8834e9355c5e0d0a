package nmea

import (
	"errors"
	"fmt"
)

var (
	ErrIncomplete          = errors.New("incomplete sentence")
	ErrUnknownFrameMarker  = errors.New("unknown frame marker")
	ErrInvalidChecksum     = errors.New("invalid checksum")
	ErrChecksumMismatch    = errors.New("checksum mismatch")
	ErrMalformedTerminator = errors.New("malformed terminator")
	ErrUnknownTalker       = errors.New("unknown talker")
	ErrUnknownMessage      = errors.New("unknown message code")
	ErrUnsupportedMessage  = errors.New("unsupported message code")
	ErrTrailingData        = errors.New("trailing data")
	ErrInvalidNumericField = errors.New("invalid numeric field")
	ErrInvalidEnumField    = errors.New("invalid enumerated field")
	ErrInvalidTimeField    = errors.New("invalid time field")
	ErrInvalidDateField    = errors.New("invalid date field")
	ErrInvalidUnitMarker   = errors.New("invalid unit marker")
	ErrFieldCount          = errors.New("missing field")
)

// Stage identifies the decoding step that rejected a sentence.
type Stage uint8

const (
	StageFrame Stage = iota
	StageChecksum
	StageTerminator
	StageTalker
	StageMessage
	StageField
)

var stageNames = [...]string{
	StageFrame:      "frame",
	StageChecksum:   "checksum",
	StageTerminator: "terminator",
	StageTalker:     "talker",
	StageMessage:    "message",
	StageField:      "field",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", s)
}

// ParseError is returned for every failed decode. Err is one of the
// package's sentinel errors, so callers can use errors.Is on the result.
type ParseError struct {
	Stage Stage
	Code  string // message code, when known
	Field int    // 1-based field index, 0 when not at the field stage
	Token string // offending input, possibly truncated
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field > 0:
		return fmt.Sprintf("nmea: %s field %d %q: %v", e.Code, e.Field, e.Token, e.Err)
	case e.Token != "":
		return fmt.Sprintf("nmea: %s: %v (%q)", e.Stage, e.Err, e.Token)
	default:
		return fmt.Sprintf("nmea: %s: %v", e.Stage, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const maxTokenInError = 16

func newError(stage Stage, err error, token string) *ParseError {
	if len(token) > maxTokenInError {
		token = token[:maxTokenInError]
	}
	return &ParseError{Stage: stage, Token: token, Err: err}
}

// ErrorKind returns a short stable name for the sentinel wrapped by err,
// suitable as a metric label. Errors not produced by this package yield
// "other".
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "other"
}

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrIncomplete, "incomplete"},
	{ErrUnknownFrameMarker, "frame_marker"},
	{ErrInvalidChecksum, "invalid_checksum"},
	{ErrChecksumMismatch, "checksum_mismatch"},
	{ErrMalformedTerminator, "terminator"},
	{ErrUnknownTalker, "unknown_talker"},
	{ErrUnknownMessage, "unknown_message"},
	{ErrUnsupportedMessage, "unsupported_message"},
	{ErrTrailingData, "trailing_data"},
	{ErrInvalidNumericField, "numeric_field"},
	{ErrInvalidEnumField, "enum_field"},
	{ErrInvalidTimeField, "time_field"},
	{ErrInvalidDateField, "date_field"},
	{ErrInvalidUnitMarker, "unit_marker"},
	{ErrFieldCount, "field_count"},
}
