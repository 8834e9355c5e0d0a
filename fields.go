package nmea

import (
	"strconv"
	"strings"
	"time"
)

// fieldReader walks the comma separated field buffer of one sentence. All
// message decoders are built from its methods and the generic helpers
// below; none of them slice the buffer themselves.
type fieldReader struct {
	buf     string
	done    bool // the final field has been consumed
	field   int  // 1-based index of the field last returned by token
	code    string
	century int
}

func newFieldReader(code, buf string, century int) *fieldReader {
	return &fieldReader{code: code, buf: buf, century: century}
}

func (r *fieldReader) fail(err error, tok string) error {
	e := newError(StageField, err, tok)
	e.Code = r.code
	e.Field = r.field
	return e
}

// token returns the next field. Once a comma has been consumed there is
// always one more field to read, even if it is empty.
func (r *fieldReader) token() (string, error) {
	if r.done {
		r.field++
		return "", r.fail(ErrFieldCount, "")
	}
	r.field++
	tok, rest, ok := strings.Cut(r.buf, ",")
	if !ok {
		r.done = true
		r.buf = ""
		return tok, nil
	}
	r.buf = rest
	return tok, nil
}

// exhausted reports whether every field has been read.
func (r *fieldReader) exhausted() bool {
	return r.done
}

// remaining is the number of fields left to read.
func (r *fieldReader) remaining() int {
	if r.done {
		return 0
	}
	return strings.Count(r.buf, ",") + 1
}

func (r *fieldReader) str() (string, error) {
	return r.token()
}

func (r *fieldReader) float() (*float64, error) {
	tok, err := r.token()
	if err != nil || tok == "" {
		return nil, err
	}
	if !isDecimal(tok) {
		return nil, r.fail(ErrInvalidNumericField, tok)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, r.fail(ErrInvalidNumericField, tok)
	}
	return &v, nil
}

func (r *fieldReader) uint8() (*uint8, error) {
	v, err := r.uint(8)
	if v == nil || err != nil {
		return nil, err
	}
	n := uint8(*v)
	return &n, nil
}

func (r *fieldReader) uint16() (*uint16, error) {
	v, err := r.uint(16)
	if v == nil || err != nil {
		return nil, err
	}
	n := uint16(*v)
	return &n, nil
}

func (r *fieldReader) uint(bits int) (*uint64, error) {
	tok, err := r.token()
	if err != nil || tok == "" {
		return nil, err
	}
	v, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return nil, r.fail(ErrInvalidNumericField, tok)
	}
	return &v, nil
}

func (r *fieldReader) int8() (*int8, error) {
	tok, err := r.token()
	if err != nil || tok == "" {
		return nil, err
	}
	v, err := strconv.ParseInt(tok, 10, 8)
	if err != nil {
		return nil, r.fail(ErrInvalidNumericField, tok)
	}
	n := int8(v)
	return &n, nil
}

// requiredUint8 is a counter that may not be left empty.
func (r *fieldReader) requiredUint8() (uint8, error) {
	v, err := r.uint8()
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, r.fail(ErrInvalidNumericField, "")
	}
	return *v, nil
}

// unit reads an optional number as the unit type U.
func unit[U ~float64](r *fieldReader) (*U, error) {
	v, err := r.float()
	if v == nil || err != nil {
		return nil, err
	}
	u := U(*v)
	return &u, nil
}

// code reads a mandatory fixed-width enumerated field.
func code[E any](r *fieldReader, table map[string]E) (E, error) {
	var zero E
	tok, err := r.token()
	if err != nil {
		return zero, err
	}
	v, ok := table[tok]
	if !ok {
		return zero, r.fail(ErrInvalidEnumField, tok)
	}
	return v, nil
}

// optionalCode is like code but maps an empty field to nil.
func optionalCode[E any](r *fieldReader, table map[string]E) (*E, error) {
	tok, err := r.token()
	if err != nil || tok == "" {
		return nil, err
	}
	v, ok := table[tok]
	if !ok {
		return nil, r.fail(ErrInvalidEnumField, tok)
	}
	return &v, nil
}

// codeList reads a field made of consecutive single-character codes, such
// as the per-constellation mode indicator of GNS.
func codeList[E any](r *fieldReader, table map[string]E) ([]E, error) {
	tok, err := r.token()
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return nil, r.fail(ErrInvalidEnumField, tok)
	}
	out := make([]E, 0, len(tok))
	for i := 0; i < len(tok); i++ {
		v, ok := table[tok[i:i+1]]
		if !ok {
			return nil, r.fail(ErrInvalidEnumField, tok)
		}
		out = append(out, v)
	}
	return out, nil
}

// expectUnit consumes a field that must be exactly the given unit marker.
func (r *fieldReader) expectUnit(want string) error {
	tok, err := r.token()
	if err != nil {
		return err
	}
	if tok != want {
		return r.fail(ErrInvalidUnitMarker, tok)
	}
	return nil
}

// degree reads a packed [d]ddmm.mmmm coordinate and returns it in decimal
// degrees. The minutes keep their exact decimal text.
func (r *fieldReader) degree() (*Degree, error) {
	tok, err := r.token()
	if err != nil || tok == "" {
		return nil, err
	}
	deg, min, ok := splitDegrees(tok)
	if !ok {
		return nil, r.fail(ErrInvalidNumericField, tok)
	}
	d := Degree(deg + min/60)
	return &d, nil
}

// rawMinutes reads an angle reported directly in minutes.
func (r *fieldReader) rawMinutes() (*Minute, error) {
	return unit[Minute](r)
}

func splitDegrees(tok string) (deg, min float64, ok bool) {
	neg := false
	if strings.HasPrefix(tok, "-") {
		neg = true
		tok = tok[1:]
	}
	if !isDecimal(tok) || !isDigit(tok[0]) {
		return 0, 0, false
	}
	intPart, frac, _ := strings.Cut(tok, ".")
	n, err := strconv.ParseUint(intPart, 10, 32)
	if err != nil || !allDigits(frac) {
		return 0, 0, false
	}
	deg = float64(n / 100)
	min, err = strconv.ParseFloat(strconv.FormatUint(n%100, 10)+"."+frac+"0", 64)
	if err != nil {
		return 0, 0, false
	}
	if neg {
		deg, min = -deg, -min
	}
	return deg, min, true
}

// time reads hhmmss or hhmmss.fff.
func (r *fieldReader) time() (*Time, error) {
	tok, err := r.token()
	if err != nil || tok == "" {
		return nil, err
	}
	hms, frac, hasFrac := strings.Cut(tok, ".")
	if len(hms) != 6 || !allDigits(hms) || (hasFrac && (frac == "" || len(frac) > 9 || !allDigits(frac))) {
		return nil, r.fail(ErrInvalidTimeField, tok)
	}
	t := Time{
		Hour:   atoi2(hms[0:2]),
		Minute: atoi2(hms[2:4]),
		Second: atoi2(hms[4:6]),
	}
	if t.Hour > 23 || t.Minute > 59 || t.Second > 59 {
		return nil, r.fail(ErrInvalidTimeField, tok)
	}
	if hasFrac {
		ns, _ := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		t.Nanosecond = ns
	}
	return &t, nil
}

// date reads ddmmyy. The receiver does not send the century; it is taken
// from the decoder configuration.
func (r *fieldReader) date() (*Date, error) {
	tok, err := r.token()
	if err != nil || tok == "" {
		return nil, err
	}
	if len(tok) != 6 || !allDigits(tok) {
		return nil, r.fail(ErrInvalidDateField, tok)
	}
	d := Date{
		Day:   atoi2(tok[0:2]),
		Month: time.Month(atoi2(tok[2:4])),
		Year:  r.century + atoi2(tok[4:6]),
	}
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return nil, r.fail(ErrInvalidDateField, tok)
	}
	// Reject days that do not exist in the month.
	norm := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	if norm.Day() != d.Day || norm.Month() != d.Month {
		return nil, r.fail(ErrInvalidDateField, tok)
	}
	return &d, nil
}

// fill decodes len(dst) consecutive slots with next. Slots after the end
// of the buffer are left at their zero value.
func fill[T any](r *fieldReader, dst []T, next func(*fieldReader) (T, error)) error {
	for i := range dst {
		if r.exhausted() {
			return nil
		}
		v, err := next(r)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isDecimal accepts the plain signed decimal notation used on the wire.
// ParseFloat alone would also take exponents, hex floats and "Inf".
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
			digits++
		case s[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
