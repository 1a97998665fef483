// Package catalog parses the textual unit definition language into a
// populated unit registry. A document is a sequence of blocks:
//
//	unit meter {
//	    dimension: length
//	    transformation: identity
//	    prefixes: standard
//	}
//
// Dimension expressions reduce flat left-to-right over the ten fundamental
// axis names; "prefixes: standard" additionally registers one derived unit
// per entry of the fixed SI prefix table. A single malformed definition or
// duplicate name aborts the whole document: no partial registry escapes.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khristoforovs/arshin/fundamental"
	"github.com/khristoforovs/arshin/registry"
	"github.com/khristoforovs/arshin/transform"
	"github.com/khristoforovs/arshin/unit"
)

// definition is one parsed unit block, dimension already reduced.
type definition struct {
	name             string
	dim              fundamental.Dimension
	tr               transform.Transformation
	standardPrefixes bool
	line, col        int
}

// Parse parses a unit definition document into a fresh registry.
func Parse(src string) (*registry.Registry, error) {
	defs, err := parseDocument(src)
	if err != nil {
		return nil, err
	}
	return buildRegistry(defs)
}

func buildRegistry(defs []definition) (*registry.Registry, error) {
	r := registry.New()
	for _, def := range defs {
		if err := registerDefinition(r, def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// registerDefinition registers the base unit and, when standard prefixes
// are requested, its 24 prefixed derivatives. Prefix compatibility is
// checked per definition before any derivative is registered.
func registerDefinition(r *registry.Registry, def definition) error {
	var base unit.Unit
	switch def.tr.Kind() {
	case transform.KindIdentity:
		base = unit.NewBase(def.name, def.dim)
	case transform.KindLinear:
		base = unit.NewLinear(def.name, def.dim, def.tr.Scale(), def.tr.Offset())
	case transform.KindDecibel:
		base = unit.New(def.name, def.dim, def.tr)
	}
	if err := r.Register(base); err != nil {
		return err
	}

	if !def.standardPrefixes {
		return nil
	}

	switch def.tr.Kind() {
	case transform.KindDecibel:
		return &ParseError{
			Line:    def.line,
			Column:  def.col,
			Message: "decibel transformation is not compatible with standard prefixes",
		}
	case transform.KindLinear:
		if def.tr.Offset() != 0 {
			return &ParseError{
				Line:    def.line,
				Column:  def.col,
				Message: "linear transformation with offset is not compatible with standard prefixes",
			}
		}
	}

	baseScale := def.tr.EffectiveScale()
	for _, p := range siPrefixes {
		derived := unit.NewLinear(p.Name+def.name, def.dim, baseScale*p.Factor, 0)
		if err := r.Register(derived); err != nil {
			return err
		}
	}
	return nil
}

type parser struct {
	toks []token
	pos  int
}

func parseDocument(src string) ([]definition, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	var defs []definition
	for p.peek().kind != tokenEOF {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, got %s", kind, describeToken(t))
	}
	return t, nil
}

func (p *parser) expectKeyword(word string) (token, error) {
	t := p.next()
	if t.kind != tokenIdent || t.text != word {
		return t, p.errorf(t, "expected %q, got %s", word, describeToken(t))
	}
	return t, nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &ParseError{Line: t.line, Column: t.col, Message: fmt.Sprintf(format, args...)}
}

func describeToken(t token) string {
	if t.kind == tokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

func (p *parser) parseDefinition() (definition, error) {
	def := definition{
		dim: fundamental.Dimensionless,
		tr:  transform.Identity(),
	}

	kw, err := p.expectKeyword("unit")
	if err != nil {
		return def, err
	}
	def.line, def.col = kw.line, kw.col

	name, err := p.expect(tokenIdent)
	if err != nil {
		return def, err
	}
	def.name = name.text

	if _, err := p.expect(tokenLBrace); err != nil {
		return def, err
	}

	for p.peek().kind != tokenRBrace {
		prop, err := p.expect(tokenIdent)
		if err != nil {
			return def, err
		}
		if _, err := p.expect(tokenColon); err != nil {
			return def, err
		}

		switch prop.text {
		case "dimension":
			dim, err := p.parseDimensionExpression()
			if err != nil {
				return def, err
			}
			def.dim = dim
		case "transformation":
			tr, err := p.parseTransformation()
			if err != nil {
				return def, err
			}
			def.tr = tr
		case "prefixes":
			standard, err := p.parsePrefixes()
			if err != nil {
				return def, err
			}
			def.standardPrefixes = standard
		default:
			return def, p.errorf(prop, "unknown property %q", prop.text)
		}
	}

	_, err = p.expect(tokenRBrace)
	return def, err
}

// parseDimensionExpression reduces a flat term list left to right, starting
// from the dimensionless identity. There is no operator precedence and no
// grouping; a "/" negates the exponent of the term that follows it.
func (p *parser) parseDimensionExpression() (fundamental.Dimension, error) {
	dim := fundamental.Dimensionless

	negate := false
	for {
		term, exp, err := p.parseDimensionTerm()
		if err != nil {
			return dim, err
		}
		if negate {
			exp = -exp
		}
		dim = dim.Mul(term.Pow(exp))

		switch p.peek().kind {
		case tokenStar:
			p.next()
			negate = false
		case tokenSlash:
			p.next()
			negate = true
		default:
			return dim, nil
		}
	}
}

// parseDimensionTerm reads one axis name, possibly spanning several words
// ("amount of substance"), followed by an optional "^" integer exponent.
func (p *parser) parseDimensionTerm() (fundamental.Dimension, int64, error) {
	first, err := p.expect(tokenIdent)
	if err != nil {
		return fundamental.Dimensionless, 0, err
	}

	name := first.text
	for p.peek().kind == tokenIdent && isAxisNamePrefix(name+" "+p.peek().text) {
		name += " " + p.next().text
	}

	axis, ok := fundamental.AxisFromName(name)
	if !ok {
		return fundamental.Dimensionless, 0, p.errorf(first, "unknown fundamental axis %q", name)
	}

	exp := int64(1)
	if p.peek().kind == tokenCaret {
		p.next()
		num, err := p.expect(tokenNumber)
		if err != nil {
			return fundamental.Dimensionless, 0, err
		}
		exp, err = strconv.ParseInt(num.text, 10, 64)
		if err != nil {
			return fundamental.Dimensionless, 0, p.errorf(num, "exponent %q is not an integer", num.text)
		}
	}

	return fundamental.FromAxis(axis), exp, nil
}

func isAxisNamePrefix(s string) bool {
	for _, a := range fundamental.Axes() {
		if strings.HasPrefix(a.String(), s) {
			return true
		}
	}
	return false
}

func (p *parser) parseTransformation() (transform.Transformation, error) {
	kind, err := p.expect(tokenIdent)
	if err != nil {
		return transform.Identity(), err
	}

	switch kind.text {
	case "identity":
		return transform.Identity(), nil

	case "linear":
		if _, err := p.expect(tokenLParen); err != nil {
			return transform.Identity(), err
		}
		scale, err := p.parseNamedNumber("scale")
		if err != nil {
			return transform.Identity(), err
		}
		offset := 0.0
		if p.peek().kind == tokenComma {
			p.next()
			offset, err = p.parseNamedNumber("offset")
			if err != nil {
				return transform.Identity(), err
			}
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return transform.Identity(), err
		}
		return transform.Linear(scale, offset), nil

	case "decibel":
		if _, err := p.expect(tokenLParen); err != nil {
			return transform.Identity(), err
		}
		p0, err := p.parseNamedNumber("p0")
		if err != nil {
			return transform.Identity(), err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return transform.Identity(), err
		}
		return transform.Decibel(p0), nil
	}

	return transform.Identity(), p.errorf(kind, "unknown transformation %q", kind.text)
}

// parseNamedNumber reads `<name>: <number>`.
func (p *parser) parseNamedNumber(name string) (float64, error) {
	if _, err := p.expectKeyword(name); err != nil {
		return 0, err
	}
	if _, err := p.expect(tokenColon); err != nil {
		return 0, err
	}
	num, err := p.expect(tokenNumber)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(num.text, 64)
	if err != nil {
		return 0, p.errorf(num, "malformed number %q", num.text)
	}
	return v, nil
}

func (p *parser) parsePrefixes() (bool, error) {
	mode, err := p.expect(tokenIdent)
	if err != nil {
		return false, err
	}
	switch mode.text {
	case "standard":
		return true, nil
	case "no":
		return false, nil
	}
	return false, p.errorf(mode, "prefixes must be \"standard\" or \"no\", got %q", mode.text)
}
