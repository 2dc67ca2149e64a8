package project

import (
	"bytes"
	"strings"
)

// lineWriter splits a byte stream into lines and hands each one to emit.
type lineWriter struct {
	emit func(line string)
	buf  []byte
}

func newLineWriter(emit func(line string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emitLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *lineWriter) Close() error {
	if len(w.buf) > 0 {
		w.emitLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *lineWriter) emitLine(line []byte) {
	w.emit(strings.TrimSuffix(string(line), "\r"))
}
