package nmea

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestTokenSplitting(t *testing.T) {
	r := newFieldReader("TST", "a,,b,", 2000)
	want := []string{"a", "", "b", ""}
	for i, w := range want {
		if r.exhausted() {
			t.Fatalf("exhausted before field %d", i+1)
		}
		got, err := r.str()
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("field %d: got %q, want %q", i+1, got, w)
		}
	}
	if !r.exhausted() {
		t.Error("not exhausted after last field")
	}
	_, err := r.str()
	var pe *ParseError
	if !errors.As(err, &pe) || !errors.Is(err, ErrFieldCount) {
		t.Fatal("expected field count error, got", err)
	}
	if pe.Field != 5 || pe.Code != "TST" {
		t.Errorf("error context %+v", pe)
	}
}

func TestRemaining(t *testing.T) {
	r := newFieldReader("TST", "1,2,3", 2000)
	if n := r.remaining(); n != 3 {
		t.Error("remaining", n)
	}
	r.str()
	r.str()
	r.str()
	if n := r.remaining(); n != 0 {
		t.Error("remaining after read", n)
	}
}

func TestDegree(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"4717.11399", 47 + 17.11399/60},
		{"00833.91590", 8 + 33.91590/60},
		{"5114.51176", 51 + 14.51176/60},
		{"0000.0000", 0},
		{"9000", 90},
		{"18000.000", 180},
		{"4730", 47.5},
		{"-4730.0", -47.5},
		{"0030", 0.5},
	}
	for _, tc := range cases {
		r := newFieldReader("TST", tc.in, 2000)
		got, err := r.degree()
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got == nil || math.Abs(float64(*got)-tc.want) > 1e-12 {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDegreeEmptyIsAbsent(t *testing.T) {
	r := newFieldReader("TST", ",", 2000)
	got, err := r.degree()
	if err != nil || got != nil {
		t.Errorf("got %v, %v; want nil, nil", got, err)
	}
}

func TestDegreeInvalid(t *testing.T) {
	for _, in := range []string{"abc", "47.1.2", ".5", "1e3", "47 17", "-", "4717.1x"} {
		r := newFieldReader("TST", in, 2000)
		if _, err := r.degree(); !errors.Is(err, ErrInvalidNumericField) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestFloatStrict(t *testing.T) {
	for _, in := range []string{"1e5", "Inf", "NaN", "0x1p3", "1_000", "--1", "."} {
		r := newFieldReader("TST", in, 2000)
		if _, err := r.float(); !errors.Is(err, ErrInvalidNumericField) {
			t.Errorf("%q: got %v", in, err)
		}
	}
	for _, in := range []string{"1", "-1.5", "+2.", ".5", "0.004"} {
		r := newFieldReader("TST", in, 2000)
		if v, err := r.float(); err != nil || v == nil {
			t.Errorf("%q: got %v, %v", in, v, err)
		}
	}
}

func TestIntegerRange(t *testing.T) {
	r := newFieldReader("TST", "255,256,-1,65535,-128,128", 2000)
	if v, err := r.uint8(); err != nil || *v != 255 {
		t.Error("255:", v, err)
	}
	if _, err := r.uint8(); !errors.Is(err, ErrInvalidNumericField) {
		t.Error("256:", err)
	}
	if _, err := r.uint8(); !errors.Is(err, ErrInvalidNumericField) {
		t.Error("-1:", err)
	}
	if v, err := r.uint16(); err != nil || *v != 65535 {
		t.Error("65535:", v, err)
	}
	if v, err := r.int8(); err != nil || *v != -128 {
		t.Error("-128:", v, err)
	}
	if _, err := r.int8(); !errors.Is(err, ErrInvalidNumericField) {
		t.Error("128:", err)
	}
}

func TestTime(t *testing.T) {
	cases := []struct {
		in   string
		want Time
	}{
		{"092725.00", Time{Hour: 9, Minute: 27, Second: 25}},
		{"125027", Time{Hour: 12, Minute: 50, Second: 27}},
		{"103600.01", Time{Hour: 10, Minute: 36, Nanosecond: 10_000_000}},
		{"235959.999", Time{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_000_000}},
		{"000000.5", Time{Nanosecond: 500_000_000}},
	}
	for _, tc := range cases {
		r := newFieldReader("TST", tc.in, 2000)
		got, err := r.time()
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if *got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, *got, tc.want)
		}
	}

	r := newFieldReader("TST", "092725.00", 2000)
	got, _ := r.time()
	if s := got.String(); s != "09:27:25.000" {
		t.Error("string", s)
	}
}

func TestTimeInvalid(t *testing.T) {
	for _, in := range []string{"246000", "126000", "125960", "12502", "1250270", "125027.", "12:50:27", "12502a", "125027.1234567890"} {
		r := newFieldReader("TST", in, 2000)
		if _, err := r.time(); !errors.Is(err, ErrInvalidTimeField) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestDate(t *testing.T) {
	r := newFieldReader("TST", "091202,290224", 2000)
	d, err := r.date()
	if err != nil {
		t.Fatal(err)
	}
	if *d != (Date{Year: 2002, Month: time.December, Day: 9}) {
		t.Error("got", *d)
	}
	if d, err = r.date(); err != nil || d.String() != "2024-02-29" {
		t.Error("leap day:", d, err)
	}

	r = newFieldReader("TST", "091202", 1900)
	if d, _ := r.date(); d.Year != 1902 {
		t.Error("century", d.Year)
	}
}

func TestDateInvalid(t *testing.T) {
	for _, in := range []string{"320102", "001202", "091302", "090002", "290223", "310402", "9122", "0912022", "09-202"} {
		r := newFieldReader("TST", in, 2000)
		if _, err := r.date(); !errors.Is(err, ErrInvalidDateField) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestCodes(t *testing.T) {
	r := newFieldReader("TST", "A,,X,ANRF,", 2000)
	if v, err := code(r, statusCodes); err != nil || v != StatusValid {
		t.Error("status:", v, err)
	}
	if _, err := code(r, statusCodes); !errors.Is(err, ErrInvalidEnumField) {
		t.Error("empty mandatory code:", err)
	}
	if _, err := optionalCode(r, statusCodes); !errors.Is(err, ErrInvalidEnumField) {
		t.Error("unknown optional code:", err)
	}
	modes, err := codeList(r, fixModeCodes)
	if err != nil {
		t.Fatal(err)
	}
	want := []FixMode{ModeAutonomous, ModeNoFix, ModeRTKFixed, ModeRTKFloat}
	if len(modes) != len(want) {
		t.Fatal("modes", modes)
	}
	for i := range want {
		if modes[i] != want[i] {
			t.Errorf("mode %d: %v", i, modes[i])
		}
	}
	if v, err := optionalCode(r, statusCodes); err != nil || v != nil {
		t.Error("empty optional code:", v, err)
	}
}

func TestExpectUnit(t *testing.T) {
	r := newFieldReader("TST", "M,F,", 2000)
	if err := r.expectUnit("M"); err != nil {
		t.Error(err)
	}
	if err := r.expectUnit("M"); !errors.Is(err, ErrInvalidUnitMarker) {
		t.Error("F:", err)
	}
	if err := r.expectUnit("M"); !errors.Is(err, ErrInvalidUnitMarker) {
		t.Error("empty:", err)
	}
}

func TestFillStopsAtEnd(t *testing.T) {
	r := newFieldReader("TST", "1,2", 2000)
	var dst [4]*uint8
	if err := fill(r, dst[:], (*fieldReader).uint8); err != nil {
		t.Fatal(err)
	}
	if *dst[0] != 1 || *dst[1] != 2 || dst[2] != nil || dst[3] != nil {
		t.Error("got", dst)
	}
}
