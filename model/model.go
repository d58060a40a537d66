/*
Package model holds the closed set of entity-kind discriminators and the
two small schema enumerations (edge multiplicity, property cardinality)
that the codec layer serializes as a single byte.
*/
package model

import (
	"strings"

	"github.com/krotik/vertexdb/errs"
)

// Kind is the one-byte discriminator prefixing every persisted key.
type Kind byte

// Entity kind discriminators, fixed by the wire format.
const (
	KindVertexLabel Kind = 0x01
	KindEdgeLabel   Kind = 0x02
	KindPropertyKey Kind = 0x03
	KindVertex      Kind = 0x04
	KindInEdge      Kind = 0x05
	KindOutEdge     Kind = 0x06
	KindMetaProp    Kind = 0x07
)

// Direction picks which of the two rows an edge lookup reads.
type Direction int

const (
	Out Direction = iota
	In
)

// Multiplicity constrains how many edges of a label may connect any two
// vertices.
type Multiplicity byte

const (
	One2One Multiplicity = iota + 1
	One2Many
	Many2One
	Many2ManySimple
	Many2ManyMulti
)

func (m Multiplicity) String() string {
	switch m {
	case One2One:
		return "One2One"
	case One2Many:
		return "One2Many"
	case Many2One:
		return "Many2One"
	case Many2ManySimple:
		return "Many2ManySimple"
	case Many2ManyMulti:
		return "Many2ManyMulti"
	default:
		return "Unknown"
	}
}

// ParseMultiplicity parses a case-insensitive multiplicity keyword.
func ParseMultiplicity(s string) (Multiplicity, error) {
	switch strings.ToUpper(s) {
	case "ONE2ONE":
		return One2One, nil
	case "ONE2MANY":
		return One2Many, nil
	case "MANY2ONE":
		return Many2One, nil
	case "MANY2MANYSIMPLE":
		return Many2ManySimple, nil
	case "MANY2MANYMULTI":
		return Many2ManyMulti, nil
	}
	return 0, errs.Semanticf("no such multiplicity: %q", s)
}

// MultiplicityFromByte decodes a persisted multiplicity discriminant.
func MultiplicityFromByte(b byte) (Multiplicity, error) {
	m := Multiplicity(b)
	switch m {
	case One2One, One2Many, Many2One, Many2ManySimple, Many2ManyMulti:
		return m, nil
	}
	return 0, errs.Codecf("invalid multiplicity discriminant: %#x", b)
}

// Cardinality constrains whether a property key may carry one value, a
// list, or a set of values.
type Cardinality byte

const (
	Single Cardinality = iota + 1
	List
	Set
)

func (c Cardinality) String() string {
	switch c {
	case Single:
		return "Single"
	case List:
		return "List"
	case Set:
		return "Set"
	default:
		return "Unknown"
	}
}

// ParseCardinality parses a case-insensitive cardinality keyword.
func ParseCardinality(s string) (Cardinality, error) {
	switch strings.ToUpper(s) {
	case "SINGLE":
		return Single, nil
	case "LIST":
		return List, nil
	case "SET":
		return Set, nil
	}
	return 0, errs.Semanticf("no such cardinality: %q", s)
}

// CardinalityFromByte decodes a persisted cardinality discriminant.
func CardinalityFromByte(b byte) (Cardinality, error) {
	c := Cardinality(b)
	switch c {
	case Single, List, Set:
		return c, nil
	}
	return 0, errs.Codecf("invalid cardinality discriminant: %#x", b)
}
