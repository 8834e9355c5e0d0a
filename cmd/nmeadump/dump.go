package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"calmh.dev/nmea"
	"calmh.dev/nmea/internal/fixlog"
	"gopkg.in/yaml.v3"
)

// record is the structured output form of a decoded sentence.
type record struct {
	Talker  nmea.Talker  `json:"talker" yaml:"talker"`
	Code    string       `json:"code" yaml:"code"`
	Message nmea.Message `json:"message" yaml:"message"`
}

type dumper struct {
	out     io.Writer
	format  string
	dec     *nmea.Decoder
	fixes   *fixlog.Store
	stats   *stats
	now     func() time.Time
	yamlEnc *yaml.Encoder
}

func newDumper(out io.Writer, format string, dec *nmea.Decoder) *dumper {
	return &dumper{
		out:    out,
		format: format,
		dec:    dec,
		stats:  newStats(),
		now:    time.Now,
	}
}

// dump decodes every sentence in r and writes it to the output. Only
// output and storage failures are returned; bad sentences are counted.
func (d *dumper) dump(ctx context.Context, r io.Reader) error {
	cr := &countingReader{r: r}
	framer := nmea.NewFramer(cr)
	defer func() {
		d.stats.bytes += cr.n
		d.stats.discarded += framer.Discarded()
	}()

	for {
		line, err := framer.Read()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return d.flush()
		}
		if err != nil {
			return err
		}

		s, err := d.dec.Decode(line)
		if err != nil {
			d.stats.reject(err)
			slog.Debug("Rejected sentence", "line", strings.TrimSpace(line), "error", err)
			continue
		}
		d.stats.accept(s)

		if err := d.write(s); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if d.fixes != nil {
			if f, ok := fixlog.FromSentence(s, d.now()); ok {
				if _, err := d.fixes.Record(ctx, f); err != nil {
					return err
				}
				d.stats.fixes++
			}
		}
	}
}

func (d *dumper) write(s nmea.Sentence) error {
	rec := record{Talker: s.Talker, Code: s.Message.Code(), Message: s.Message}
	switch d.format {
	case "json":
		return json.NewEncoder(d.out).Encode(rec)
	case "yaml":
		if d.yamlEnc == nil {
			d.yamlEnc = yaml.NewEncoder(d.out)
			d.yamlEnc.SetIndent(2)
		}
		return d.yamlEnc.Encode(rec)
	default:
		_, err := fmt.Fprintf(d.out, "%s %s %s\n", s.Talker, rec.Code, formatFields(reflect.ValueOf(s.Message)))
		return err
	}
}

func (d *dumper) flush() error {
	if d.yamlEnc == nil {
		return nil
	}
	err := d.yamlEnc.Close()
	d.yamlEnc = nil
	return err
}

// formatFields renders a message as space separated name=value pairs,
// leaving out empty fields.
func formatFields(v reflect.Value) string {
	var parts []string
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		if isEmpty(f) {
			continue
		}
		parts = append(parts, t.Field(i).Name+"="+formatValue(f))
	}
	return strings.Join(parts, " ")
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		var elems []string
		for i := 0; i < v.Len(); i++ {
			if e := v.Index(i); !isEmpty(e) {
				elems = append(elems, formatValue(e))
			}
		}
		return "[" + strings.Join(elems, ",") + "]"
	case reflect.Struct:
		return "{" + formatFields(v) + "}"
	default:
		return fmt.Sprint(v.Interface())
	}
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice:
		return v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0)
	case reflect.String:
		return v.Len() == 0
	case reflect.Struct:
		return v.IsZero()
	}
	return false
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
