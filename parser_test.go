package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSvg = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!-- Created with Inkscape (http://www.inkscape.org/) -->
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50.5" id="svg2" version="1.1">
  <defs id="defs4" />
  <path id="path1" d="M 0,0 L 10,0 Z" />
  <g id="layer1">
    <g id="g2">
      <path id="path2" d="M 1,1 H 2" />
    </g>
    <rect x="0" y="0" width="5" height="5" />
    <path id="path3" />
  </g>
  <path id="path4" d="M 3,3 V 4"></path>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg, "test")
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(svg.Name, "test")
	is.Equal(svg.Height, 50.5)
	is.Equal(len(svg.Paths), 4)
	is.Equal(svg.Paths[0].ID, "path1")
	is.Equal(svg.Paths[1].ID, "path2")
	is.Equal(svg.Paths[1].D, "M 1,1 H 2")
	is.Equal(svg.Paths[2].ID, "path3")
	is.Equal(svg.Paths[2].D, "")
	is.Equal(svg.Paths[3].ID, "path4")

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg), "test")
	is.NoErr(err)
	is.Equal(len(svg.Paths), 4)
}

func TestParseLatin1(t *testing.T) {
	is := is.New(t)

	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?>`)
	doc.WriteString(`<svg height="10"><path id="caf`)
	doc.WriteByte(0xe9)
	doc.WriteString(`" d="M 0,0"/></svg>`)

	svg, err := ParseSvgFromReader(&doc, "latin1")
	is.NoErr(err)
	is.Equal(len(svg.Paths), 1)
	is.Equal(svg.Paths[0].ID, "café")
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)

	for _, test := range []struct {
		doc  string
		kind ErrorKind
	}{
		{`<svg width="10"><path d="M 0,0"/></svg>`, MissingAttributeError},
		{`<svg height="841.922px"></svg>`, NumberFormatError},
		{`<svg height="10"><path d="M 0,0"></svg>`, XMLParseError},
		{`<html height="10"></html>`, XMLParseError},
		{``, XMLParseError},
	} {
		_, err := ParseSvg(test.doc, "bad")
		is.Err(err)
		is.Equal(KindOf(err), test.kind)
	}
}
