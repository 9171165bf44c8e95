package edgelist

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// writerBufSize is the bufio buffer size for edge output. Heavy-tier runs
// write 5e8 lines, so the buffer is sized to keep syscall counts low.
const writerBufSize = 256 * 1024

// Writer is an append-only sink for directed edges backed by a single file.
// It creates missing parent directories, truncates the target, and writes the
// header line up front. Writers are not safe for concurrent use; each
// generator run owns its Writer exclusively.
type Writer struct {
	path    string
	file    *os.File
	buf     *bufio.Writer
	scratch []byte
	edges   int64
	closed  bool
}

// Create opens a Writer for path and writes the header comment line.
// Parent directories are created on demand. The header must not contain a
// newline; the "//" prefix is the caller's responsibility since it carries
// the topology description.
func Create(path, header string) (*Writer, error) {
	if err := gferrors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "create directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "create %s", path)
	}

	w := &Writer{
		path:    path,
		file:    f,
		buf:     bufio.NewWriterSize(f, writerBufSize),
		scratch: make([]byte, 0, 48),
	}

	if _, err := w.buf.WriteString(header + "\n"); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "write header to %s", path)
	}

	return w, nil
}

// WriteEdge appends one "{src} {dst}" line.
func (w *Writer) WriteEdge(src, dst int64) error {
	w.scratch = strconv.AppendInt(w.scratch[:0], src, 10)
	w.scratch = append(w.scratch, ' ')
	w.scratch = strconv.AppendInt(w.scratch, dst, 10)
	w.scratch = append(w.scratch, '\n')
	if _, err := w.buf.Write(w.scratch); err != nil {
		return gferrors.Wrap(gferrors.ErrCodeIO, err, "write edge to %s", w.path)
	}
	w.edges++
	return nil
}

// Edges returns the number of edges written so far.
func (w *Writer) Edges() int64 {
	return w.edges
}

// Path returns the destination file path.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes buffered output and releases the file handle. It is
// idempotent; later calls return nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return gferrors.Wrap(gferrors.ErrCodeIO, flushErr, "flush %s", w.path)
	}
	if closeErr != nil {
		return gferrors.Wrap(gferrors.ErrCodeIO, closeErr, "close %s", w.path)
	}
	return nil
}

// Discard closes the writer and removes the partially-written file. It is
// used on fatal generator errors so a half-valid file is never left behind
// looking complete.
func (w *Writer) Discard() {
	if !w.closed {
		w.closed = true
		_ = w.file.Close()
	}
	_ = os.Remove(w.path)
}
