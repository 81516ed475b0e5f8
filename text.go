package figure

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Mode keywords of the tagged text grammar.
const (
	keywordRegular = "regular"
	keywordCustom  = "custom"
)

// Grammar selects which text input forms a Decoder accepts.
type Grammar uint8

const (
	// GrammarAuto accepts both forms: a leading mode keyword selects the
	// tagged form, a leading number the plain form.
	GrammarAuto Grammar = iota
	// GrammarTagged accepts
	//  regular <radius> <cx> <cy>
	//  custom <x1> <y1> ... <xN> <yN>
	GrammarTagged
	// GrammarPlain accepts exactly N whitespace separated "x y" pairs.
	GrammarPlain
)

func (g Grammar) String() string {
	switch g {
	case GrammarAuto:
		return "auto"
	case GrammarTagged:
		return "tagged"
	case GrammarPlain:
		return "plain"
	}
	return "Grammar(" + strconv.Itoa(int(g)) + ")"
}

// ParseGrammar returns the grammar named s (auto, tagged or plain).
func ParseGrammar(s string) (Grammar, error) {
	for _, g := range [...]Grammar{GrammarAuto, GrammarTagged, GrammarPlain} {
		if strings.EqualFold(s, g.String()) {
			return g, nil
		}
	}
	return 0, errors.Errorf("unknown grammar %q", s)
}

// Decoder parses single line text descriptions of figures.
// Decoding is all or nothing: on error the target figure is not modified.
type Decoder struct {
	Grammar Grammar
}

// Decode returns a new figure of kind k described by text.
func (d Decoder) Decode(k Kind, text string) (Figure, error) {
	f, err := zero(k)
	if err != nil {
		return nil, err
	}
	if err = d.DecodeInto(f, text); err != nil {
		return nil, err
	}
	return f, nil
}

// DecodeInto replaces the vertices and center of f with those described by text.
func (d Decoder) DecodeInto(f Figure, text string) error {
	k := f.Kind()
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return errors.Wrapf(ErrEmptyInput, "decoding %s", k)
	}
	mode := strings.ToLower(fields[0])
	switch mode {
	case keywordRegular, keywordCustom:
		if d.Grammar == GrammarPlain {
			return errors.Wrapf(ErrNotNumber, "%s: plain grammar got keyword %q", k, fields[0])
		}
		fields = fields[1:]
	default:
		if d.Grammar == GrammarTagged {
			return errors.Wrapf(ErrUnknownMode, "%s: got %q, want %q or %q", k, fields[0], keywordRegular, keywordCustom)
		}
		if _, ok := parseNumber(fields[0]); !ok && d.Grammar == GrammarAuto {
			return errors.Wrapf(ErrUnknownMode, "%s: got %q, want %q, %q or a number", k, fields[0], keywordRegular, keywordCustom)
		}
		mode = keywordCustom
	}

	want := 2 * k.Arity()
	if mode == keywordRegular {
		want = 3
	}
	switch {
	case len(fields) < want:
		return errors.Wrapf(ErrTooFewTokens, "%s %s: got %d values, want %d", k, mode, len(fields), want)
	case len(fields) > want:
		return errors.Wrapf(ErrTooManyTokens, "%s %s: got %d values, want %d", k, mode, len(fields), want)
	}
	nums := make([]float64, len(fields))
	for i, tok := range fields {
		v, ok := parseNumber(tok)
		if !ok {
			return errors.Wrapf(ErrNotNumber, "%s %s: value %d is %q", k, mode, i+1, tok)
		}
		nums[i] = v
	}

	if mode == keywordRegular {
		f.SetRegular(nums[0], r2.Vec{X: nums[1], Y: nums[2]})
		return nil
	}
	vertices := make([]r2.Vec, k.Arity())
	for i := range vertices {
		vertices[i] = r2.Vec{X: nums[2*i], Y: nums[2*i+1]}
	}
	return f.SetVertices(vertices)
}

// Decode returns a new figure of kind k described by text in either grammar.
func Decode(k Kind, text string) (Figure, error) {
	return Decoder{}.Decode(k, text)
}

// parseNumber parses a finite decimal value. NaN and infinities are
// rejected since they have no area.
func parseNumber(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// format returns the printed form of the figure.
func (p *poly) format(k Kind) string {
	b := make([]byte, 0, 32+len(p.vertices)*24)
	b = append(b, k.String()...)
	b = append(b, " vertices: "...)
	for _, v := range p.vertices {
		b = appendPoint(b, v)
		b = append(b, ' ')
	}
	b = append(b, "| Center: "...)
	b = appendPoint(b, p.center)
	return string(b)
}

// marshal encodes the figure in the tagged grammar. Figures in their
// generated state encode as regular so decoding regenerates the same vertices.
func (p *poly) marshal(k Kind) ([]byte, error) {
	if len(p.vertices) != k.Arity() {
		return nil, errors.Wrapf(ErrArity, "encoding %s with %d vertices", k, len(p.vertices))
	}
	if p.regular {
		b := append([]byte(keywordRegular), ' ')
		b = appendFloat(b, p.radius)
		b = append(b, ' ')
		b = appendFloat(b, p.center.X)
		b = append(b, ' ')
		return appendFloat(b, p.center.Y), nil
	}
	b := []byte(keywordCustom)
	for _, v := range p.vertices {
		b = append(b, ' ')
		b = appendFloat(b, v.X)
		b = append(b, ' ')
		b = appendFloat(b, v.Y)
	}
	return b, nil
}

func appendPoint(b []byte, v r2.Vec) []byte {
	b = append(b, '(')
	b = appendFloat(b, v.X)
	b = append(b, ", "...)
	b = appendFloat(b, v.Y)
	return append(b, ')')
}

// appendFloat uses the shortest representation that parses back to v exactly.
func appendFloat(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'g', -1, 64)
}
