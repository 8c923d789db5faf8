package svg

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Svg is the geometry of an SVG document that matters for conversion:
// the canvas height and every path element in document order.
type Svg struct {
	Name   string
	Height float64
	Paths  []Path
}

// FlipY returns the transform flipping the document's Y axis
func (s *Svg) FlipY() Transform {
	return FlipY(s.Height)
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "svg" {
		return newError(XMLParseError, nil, "root element is <%s>, not <svg>", start.Name.Local)
	}

	height, ok := attr(start, "height")
	if !ok {
		return newError(MissingAttributeError, nil, "<svg> has no height")
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(height), 64)
	if err != nil {
		return newError(NumberFormatError, err, "<svg> height %q", height)
	}
	s.Height = h

	// paths may sit inside groups, so track depth rather than
	// returning on the first end element
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local != "path" {
				depth++
				continue
			}
			var p Path
			if err = decoder.DecodeElement(&p, &tok); err != nil {
				return err
			}
			s.Paths = append(s.Paths, p)
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

func attr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParseSvg parses an SVG string into an Svg struct
func ParseSvg(str string, name string) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name)
}

// ParseSvgFromReader parses an Svg struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string) (*Svg, error) {
	svg := Svg{Name: name}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&svg); err != nil {
		if KindOf(err) != UnknownError {
			return nil, err
		}
		return nil, newError(XMLParseError, err, "parsing %s", name)
	}
	return &svg, nil
}
