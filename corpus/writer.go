package corpus

import (
	"bufio"
	"encoding/json"
	"io"
)

// Writer serializes examples as line-delimited JSON, one record per line.
type Writer struct {
	buf *bufio.Writer
	enc *json.Encoder
	n   int
}

// NewWriter wraps w for JSONL output. HTML escaping is disabled so the
// think-tag markers are written literally.
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &Writer{buf: buf, enc: enc}
}

// Write appends one record. The encoder terminates each record with a
// single newline, which is the only delimiter between lines.
func (w *Writer) Write(e Example) error {
	if err := w.enc.Encode(e); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.n }

// Flush drains the underlying buffer.
func (w *Writer) Flush() error { return w.buf.Flush() }
