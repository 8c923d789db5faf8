package svg

import (
	"regexp"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// TransformType tells which directive a Transform was parsed from
type TransformType int

// Recognized transform directives. Anything else is NoTransform.
const (
	NoTransform TransformType = iota
	TranslateTransform
	MatrixTransform
)

var transformNames = map[string]TransformType{
	"translate": TranslateTransform,
	"matrix":    MatrixTransform,
}

var transformParams = map[TransformType]int{
	TranslateTransform: 2,
	MatrixTransform:    6,
}

// Only the first directive of a transform attribute is honoured.
var directiveRegexp = regexp.MustCompile(`([a-z]+)\(([,0-9.-]+)\)`)

// Transform is a single affine transform directive. The zero value is
// the identity.
type Transform struct {
	Type   TransformType
	Params []float64
	matrix *mt.Transform
}

// NewTranslate returns the transform translate(dx,dy)
func NewTranslate(dx, dy float64) Transform {
	return newTransform(TranslateTransform, []float64{dx, dy})
}

// NewMatrix returns the transform matrix(a,b,c,d,e,f), that is
// [[a c e] [b d f] [0 0 1]].
func NewMatrix(a, b, c, d, e, f float64) Transform {
	return newTransform(MatrixTransform, []float64{a, b, c, d, e, f})
}

// FlipY returns the transform mapping SVG coordinates of a canvas of
// the given height onto a bottom-left origin with Y pointing up.
func FlipY(height float64) Transform {
	return NewMatrix(1, 0, 0, -1, 0, height)
}

func newTransform(typ TransformType, params []float64) Transform {
	m := mt.Identity()
	switch typ {
	case TranslateTransform:
		m[0][2] = params[0]
		m[1][2] = params[1]
	case MatrixTransform:
		m[0][0], m[0][1], m[0][2] = params[0], params[2], params[4]
		m[1][0], m[1][1], m[1][2] = params[1], params[3], params[5]
	}
	return Transform{Type: typ, Params: params, matrix: &m}
}

// ParseTransform parses the first name(params) directive found in s.
// Unknown names and strings without a directive yield the identity.
func ParseTransform(s string) (Transform, error) {
	match := directiveRegexp.FindStringSubmatch(s)
	if match == nil {
		return Transform{}, nil
	}

	fields := strings.Split(match[2], ",")
	params := make([]float64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Transform{}, newError(NumberFormatError, err, "transform %q parameter %d", s, i+1)
		}
		params[i] = n
	}

	typ, ok := transformNames[match[1]]
	if !ok {
		return Transform{}, nil
	}
	if want := transformParams[typ]; len(params) < want {
		return Transform{}, newError(NumberFormatError, nil, "%s expects %d parameters, got %d", match[1], want, len(params))
	}
	return newTransform(typ, params[:transformParams[typ]]), nil
}

// Apply maps the point x,y through the transform
func (t Transform) Apply(x, y float64) (float64, float64) {
	if t.Type == NoTransform || t.matrix == nil {
		return x, y
	}
	return t.matrix.Apply(x, y)
}

// ApplyTuple is Apply for a Tuple
func (t Transform) ApplyTuple(p Tuple) Tuple {
	x, y := t.Apply(p[0], p[1])
	return Tuple{x, y}
}
