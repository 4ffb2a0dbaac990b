package html

import (
	"io"

	"github.com/a-h/templ"
)

// Writer writes markup and escaped text, keeping the first error.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (w *Writer) Attr(name, value string) {
	w.Raw(" " + name + "=\"")
	w.Text(value)
	w.Raw("\"")
}

func (w *Writer) Err() error {
	return w.err
}
