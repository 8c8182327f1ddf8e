package journal

import (
	"bufio"
	"io"

	"lukechampine.com/uint128"
)

// Writer produces journal streams.
// Output is buffered, Flush must be called when writing is done.
type Writer struct {
	w       *bufio.Writer
	buf     []byte
	written int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   bufio.NewWriterSize(w, 64*1024),
		buf: make([]byte, 0, 64),
	}
}

// Written returns amount of messages written so far.
func (w *Writer) Written() int {
	return w.written
}

func (w *Writer) WriteInsert(key uint128.Uint128, value uint64) error {
	return w.write(AppendInsertMessage(w.buf[:0], key, value))
}

func (w *Writer) WriteDelete(key uint128.Uint128) error {
	return w.write(AppendDeleteMessage(w.buf[:0], key))
}

func (w *Writer) WriteFind(key uint128.Uint128) error {
	return w.write(AppendFindMessage(w.buf[:0], key))
}

func (w *Writer) WriteClear() error {
	return w.write(AppendClearMessage(w.buf[:0]))
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) write(data []byte) error {
	w.buf = data
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	w.written++
	return nil
}
