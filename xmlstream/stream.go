// Package xmlstream delivers an XML document as a flat stream of start-tag,
// character and end-tag callbacks.
//
// Names are reported exactly as written in the document ("android:id",
// "include"); namespace prefixes are not translated to URIs. Start and end
// tags are verified to match.
package xmlstream

import (
	"encoding/xml"
	"io"

	"github.com/teranos/wrapgen/errors"
)

// Attr is one attribute of a start tag, with its qualified name.
type Attr struct {
	Name  string
	Value string
}

// Handler receives the events of one document in order.
type Handler interface {
	StartElement(name string, attrs []Attr) error
	EndElement(name string) error
	Characters(text string) error
}

// Parse reads the document from r and feeds every event to h.
// The first error returned by h stops the stream and is returned unchanged.
func Parse(r io.Reader, h Handler) error {
	d := xml.NewDecoder(r)
	var open []string

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(errors.ErrMalformedDocument, err.Error())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := qualified(t.Name)
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}
			open = append(open, name)
			if err := h.StartElement(name, attrs); err != nil {
				return err
			}

		case xml.EndElement:
			name := qualified(t.Name)
			if len(open) == 0 || open[len(open)-1] != name {
				return errors.Wrapf(errors.ErrMalformedDocument, "unexpected closing tag </%s>", name)
			}
			open = open[:len(open)-1]
			if err := h.EndElement(name); err != nil {
				return err
			}

		case xml.CharData:
			if len(open) == 0 {
				continue
			}
			if err := h.Characters(string(t)); err != nil {
				return err
			}
		}
	}

	if len(open) > 0 {
		return errors.Wrapf(errors.ErrMalformedDocument, "unclosed tag <%s>", open[len(open)-1])
	}
	return nil
}

// Lookup returns the value of the named attribute.
func Lookup(attrs []Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
