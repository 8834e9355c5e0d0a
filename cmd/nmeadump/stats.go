package main

import (
	"fmt"
	"io"
	"sort"

	"calmh.dev/nmea"
	"github.com/dustin/go-humanize"
)

type stats struct {
	bytes     int64
	discarded int
	fixes     int64
	accepted  map[string]int64 // by message code
	rejected  map[string]int64 // by error kind
}

func newStats() *stats {
	return &stats{
		accepted: make(map[string]int64),
		rejected: make(map[string]int64),
	}
}

func (s *stats) accept(sen nmea.Sentence) {
	s.accepted[sen.Message.Code()]++
}

func (s *stats) reject(err error) {
	s.rejected[nmea.ErrorKind(err)]++
}

func (s *stats) write(w io.Writer) {
	fmt.Fprintf(w, "Read %s: %s sentences decoded, %s rejected, %s overlong lines skipped\n",
		humanize.Bytes(uint64(s.bytes)), humanize.Comma(sum(s.accepted)),
		humanize.Comma(sum(s.rejected)), humanize.Comma(int64(s.discarded)))
	writeCounts(w, s.accepted)
	writeCounts(w, s.rejected)
	if s.fixes > 0 {
		fmt.Fprintf(w, "Recorded %s %s\n", humanize.Comma(s.fixes), plural(s.fixes, "fix", "fixes"))
	}
}

func writeCounts(w io.Writer, m map[string]int64) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-20s %10s\n", k, humanize.Comma(m[k]))
	}
}

func sum(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
