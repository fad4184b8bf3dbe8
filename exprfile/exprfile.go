// Package exprfile reads expressions described as YAML documents.
//
// A document lists the terms of a sum. Each term sets exactly one of number,
// fraction, group, or product:
//
//	terms:
//	  - number: 2
//	  - fraction: {sign: "-", num: 7, den: 3}
//	  - group:
//	      sign: "-"
//	      terms:
//	        - fraction: {num: 1, den: 4}
//	        - fraction: {num: 3, den: 10}
//	  - product:
//	      - number: 3
//	      - fraction: {num: 1, den: 4}
//
// Signs are "+", "-", 1, or -1, and default to plus. Factors of a product may
// only be numbers or fractions. The document describes builder calls; there is
// no expression syntax to parse.
package exprfile

import (
	"io"
	"slices"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/fractions"
)

// Doc is an expression document.
type Doc struct {
	Terms []Term `yaml:"terms"`
}

// Term is one term of a document.
type Term struct {
	Number   *int64    `yaml:"number"`
	Fraction *Fraction `yaml:"fraction"`
	Group    *Group    `yaml:"group"`
	Product  *Factors  `yaml:"product"`

	// Line is the line of the term in the document, if it was decoded.
	Line int `yaml:"-"`
}

// Fraction is Sign*Num/Den.
type Fraction struct {
	Sign Sign  `yaml:"sign"`
	Num  int64 `yaml:"num"`
	Den  int64 `yaml:"den"`
}

// Group is a parenthesized sum.
type Group struct {
	Sign  Sign   `yaml:"sign"`
	Terms []Term `yaml:"terms"`
}

// Factors are the factors of a product.
type Factors []Term

// Sign is a term sign in a document.
type Sign fractions.Sign

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sign) UnmarshalYAML(n *yaml.Node) error {
	switch n.Value {
	case "+", "1", "+1":
		*s = Sign(fractions.Plus)
	case "-", "-1":
		*s = Sign(fractions.Minus)
	default:
		return errors.Errorf("line %d: invalid sign %q", n.Line, n.Value)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler, recording the term's line.
func (t *Term) UnmarshalYAML(n *yaml.Node) error {
	if err := knownKeys(n, "term", "number", "fraction", "group", "product"); err != nil {
		return err
	}
	type plain Term
	if err := n.Decode((*plain)(t)); err != nil {
		return err
	}
	t.Line = n.Line
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Fraction) UnmarshalYAML(n *yaml.Node) error {
	if err := knownKeys(n, "fraction", "sign", "num", "den"); err != nil {
		return err
	}
	type plain Fraction
	return n.Decode((*plain)(f))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Group) UnmarshalYAML(n *yaml.Node) error {
	if err := knownKeys(n, "group", "sign", "terms"); err != nil {
		return err
	}
	type plain Group
	return n.Decode((*plain)(g))
}

// knownKeys rejects any key of the mapping n not in keys. Decoding through
// Node.Decode does not inherit the decoder's KnownFields setting. Non-mapping
// nodes are left for Decode to report.
func knownKeys(n *yaml.Node, what string, keys ...string) error {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(n.Content); i += 2 {
		k := n.Content[i]
		if !slices.Contains(keys, k.Value) {
			return errors.Errorf("line %d: field %s not found in %s", k.Line, k.Value, what)
		}
	}
	return nil
}

// Load decodes a document from r and builds its expression.
func Load(r io.Reader) (*fractions.Expr, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Doc
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decoding expression document")
	}
	return d.Build()
}

// Build builds the document's expression. Every invalid term is reported,
// each wrapped with its position in the document.
func (d *Doc) Build() (*fractions.Expr, error) {
	var errs *multierror.Error
	b := fractions.NewBuilder()
	addTerms(b, d.Terms, "terms", &errs)
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return b.Expr()
}

func addTerms(b *fractions.Builder, terms []Term, path string, errs **multierror.Error) {
	for i, t := range terms {
		addTerm(b, t, path+"["+strconv.Itoa(i)+"]", errs)
	}
}

func addTerm(b *fractions.Builder, t Term, path string, errs **multierror.Error) {
	if n := t.kinds(); n != 1 {
		*errs = multierror.Append(*errs, errors.Errorf("%s (line %d): term sets %d of number, fraction, group, product; want exactly 1", path, t.Line, n))
		return
	}
	switch {
	case t.Group != nil:
		b.Open(fractions.Sign(t.Group.Sign))
		addTerms(b, t.Group.Terms, path+".group.terms", errs)
		b.Close()
	case t.Product != nil:
		factors := make([]fractions.Factor, 0, len(*t.Product))
		for i, f := range *t.Product {
			x, err := factor(f)
			if err != nil {
				*errs = multierror.Append(*errs, errors.Wrapf(err, "%s.product[%d] (line %d)", path, i, f.Line))
				continue
			}
			factors = append(factors, x)
		}
		b.Product(factors...)
	default:
		x, err := factor(t)
		if err != nil {
			*errs = multierror.Append(*errs, errors.Wrapf(err, "%s (line %d)", path, t.Line))
			return
		}
		b.Term(x)
	}
}

// factor converts a number or fraction term to a valid factor.
func factor(t Term) (fractions.Factor, error) {
	var x fractions.Factor
	switch {
	case t.kinds() != 1:
		return nil, errors.Errorf("factor sets %d of number, fraction, group, product; want exactly 1", t.kinds())
	case t.Number != nil:
		x = fractions.Int(*t.Number)
	case t.Fraction != nil:
		f := t.Fraction
		x = fractions.Frac{Sign: fractions.Sign(f.Sign), Num: f.Num, Den: f.Den}
	default:
		return nil, errors.New("product factors must be numbers or fractions")
	}
	if _, err := fractions.Value(x); err != nil {
		return nil, err
	}
	return x, nil
}

// kinds counts the term kinds t sets.
func (t Term) kinds() int {
	n := 0
	if t.Number != nil {
		n++
	}
	if t.Fraction != nil {
		n++
	}
	if t.Group != nil {
		n++
	}
	if t.Product != nil {
		n++
	}
	return n
}
