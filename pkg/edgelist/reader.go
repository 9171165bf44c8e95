package edgelist

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// HeaderPrefix marks the leading comment line of an edge-list file.
const HeaderPrefix = "//"

// Stats summarizes one edge-list file.
type Stats struct {
	Header    string // header comment line, without trailing newline
	Edges     int64  // number of edge lines
	MaxNode   int64  // highest node id seen (-1 for an empty edge set)
	SelfLoops int64  // lines with src == dst (always 0 for well-formed files)
}

// ParseLine parses one "{src} {dst}" edge line.
func ParseLine(line string) (src, dst int64, err error) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return 0, 0, gferrors.New(gferrors.ErrCodeInvalidFormat, "edge line %q: missing separator", line)
	}
	src, err = strconv.ParseInt(line[:sp], 10, 64)
	if err != nil || src < 0 {
		return 0, 0, gferrors.New(gferrors.ErrCodeInvalidFormat, "edge line %q: bad source id", line)
	}
	dst, err = strconv.ParseInt(line[sp+1:], 10, 64)
	if err != nil || dst < 0 {
		return 0, 0, gferrors.New(gferrors.ErrCodeInvalidFormat, "edge line %q: bad target id", line)
	}
	return src, dst, nil
}

// ReadStats scans an edge-list file and returns summary statistics. The scan
// is streaming: memory use is constant regardless of file size. Malformed
// lines abort the scan with an INVALID_FORMAT error.
func ReadStats(path string) (*Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	stats := &Stats{MaxNode: -1}

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "read %s", path)
		}
		return nil, gferrors.New(gferrors.ErrCodeInvalidFormat, "%s: empty file, missing header", path)
	}
	stats.Header = sc.Text()
	if !strings.HasPrefix(stats.Header, HeaderPrefix) {
		return nil, gferrors.New(gferrors.ErrCodeInvalidFormat, "%s: first line is not a %q header", path, HeaderPrefix)
	}

	for sc.Scan() {
		src, dst, err := ParseLine(sc.Text())
		if err != nil {
			return nil, err
		}
		stats.Edges++
		if src == dst {
			stats.SelfLoops++
		}
		if src > stats.MaxNode {
			stats.MaxNode = src
		}
		if dst > stats.MaxNode {
			stats.MaxNode = dst
		}
	}
	if err := sc.Err(); err != nil {
		return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "read %s", path)
	}

	return stats, nil
}
