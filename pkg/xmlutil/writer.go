// Package xmlutil wraps the streaming XML token encoder with the small
// convenience surface feed rendering needs.
package xmlutil

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Attr is one element attribute. Attributes are carried as an ordered
// slice rather than a map so they are emitted in the order given.
type Attr struct {
	Name  string
	Value string
}

// Writer emits XML tokens to an underlying stream. The first error
// encountered sticks: every later call is a no-op and Flush reports it.
// All escaping of character data and attribute values is done by the
// underlying encoder; Writer only sequences tokens.
type Writer struct {
	enc *xml.Encoder
	err error
}

// NewWriter returns a Writer targeting w and emits the XML declaration
// naming the given encoding (defaulting to utf-8).
func NewWriter(w io.Writer, encoding string) *Writer {
	if encoding == "" {
		encoding = "utf-8"
	}
	xw := &Writer{}
	_, xw.err = fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"%s\"?>\n", encoding)
	xw.enc = xml.NewEncoder(w)
	return xw
}

// Start opens an element with the given attributes.
func (w *Writer) Start(name string, attrs ...Attr) {
	if w.err != nil {
		return
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	for _, a := range attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	w.err = w.enc.EncodeToken(start)
}

// Chars emits escaped character data.
func (w *Writer) Chars(s string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.CharData(s))
}

// End closes the named element.
func (w *Writer) End(name string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// Quick emits a leaf element in one call: start tag with attributes,
// optional character data, end tag.
func (w *Writer) Quick(name, contents string, attrs ...Attr) {
	w.Start(name, attrs...)
	if contents != "" {
		w.Chars(contents)
	}
	w.End(name)
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered tokens to the underlying stream and returns
// the first error encountered over the Writer's lifetime.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.enc.Flush()
	return w.err
}
