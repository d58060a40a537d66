/*
Package scope performs the post-parse, per-element decomposition of a
SELECT statement: it walks the WHERE expression and distributes each
leaf comparison onto the vertex/edge pattern it refers to, extracts ID
comparators, and leaves everything else as a top-level residual
condition. The planner consumes a *Scope to lower it into an operator
tree.
*/
package scope

import (
	"github.com/krotik/vertexdb/ast"
	"github.com/krotik/vertexdb/errs"
	"github.com/krotik/vertexdb/token"
)

// ComparatorKind is the closed set of ID comparators an element may
// carry: Eq is a point lookup, Gte/Lte are half-bounded range edges.
type ComparatorKind int

const (
	Eq ComparatorKind = iota
	Gte
	Lte
)

// IDComparator is one ID constraint on an element; Value is the
// comparison operand as parsed (a literal in practice, but kept as an
// Expr since the planner may defer evaluation, e.g. via min/max).
type IDComparator struct {
	Kind  ComparatorKind
	Value ast.Expr
}

// ElementPattern is the shared shape of VertexPattern/EdgePattern: an
// optional label constraint, its ID comparators, residual per-element
// predicates, and the projection items that reference only this
// element.
type ElementPattern struct {
	Name        string
	Label       ast.Expr // nil if unconstrained
	IDs         []IDComparator
	Predicates  []ast.Expr
	Projections []ast.Expr
}

// VertexPattern is an ElementPattern for a named vertex in the FROM
// clause's graph pattern.
type VertexPattern struct {
	ElementPattern
}

// EdgePattern additionally carries its endpoint vertex names.
type EdgePattern struct {
	ElementPattern
	Src string
	Dst string
}

// Scope is the decomposed SELECT: per-element patterns, the ordered
// triplet walk (preserved verbatim from the parsed graph pattern so
// the planner can lower it left to right), and anything left over.
type Scope struct {
	Vertices    map[string]*VertexPattern
	Edges       map[string]*EdgePattern
	Triplets    []ast.GraphTriplet
	Residual    []ast.Expr
	Projections []ast.Expr
}

// Analyze builds a Scope from a parsed SELECT statement.
func Analyze(sel ast.Select) (*Scope, error) {
	s := &Scope{
		Vertices:    map[string]*VertexPattern{},
		Edges:       map[string]*EdgePattern{},
		Triplets:    sel.From.Triplets,
		Projections: sel.Items,
	}

	registerVertex := func(e ast.Expr) {
		name := identName(e)
		if name == "" {
			return
		}
		if _, ok := s.Vertices[name]; !ok {
			s.Vertices[name] = &VertexPattern{ElementPattern: ElementPattern{Name: name}}
		}
	}

	for _, head := range sel.From.Heads {
		registerVertex(head)
	}
	for _, tr := range sel.From.Triplets {
		registerVertex(tr.Src)
		registerVertex(tr.Dst)
		edgeName := identName(tr.Edge)
		if edgeName == "" {
			continue
		}
		if _, ok := s.Edges[edgeName]; !ok {
			s.Edges[edgeName] = &EdgePattern{
				ElementPattern: ElementPattern{Name: edgeName},
				Src:            identName(tr.Src),
				Dst:            identName(tr.Dst),
			}
		}
	}

	if sel.Condition != nil {
		if err := s.decompose(sel.Condition); err != nil {
			return nil, err
		}
	}

	for _, item := range sel.Items {
		if name, ok := soleElement(item); ok {
			s.attachProjection(name, item)
		}
	}

	return s, nil
}

func identName(e ast.Expr) string {
	if id, ok := e.(ast.Identifier); ok {
		return id.Name
	}
	return ""
}

func (s *Scope) element(name string) *ElementPattern {
	if v, ok := s.Vertices[name]; ok {
		return &v.ElementPattern
	}
	if e, ok := s.Edges[name]; ok {
		return &e.ElementPattern
	}
	return nil
}

func (s *Scope) attachProjection(name string, item ast.Expr) {
	if el := s.element(name); el != nil {
		el.Projections = append(el.Projections, item)
	}
}

// decompose walks a WHERE expression, descending through AND/OR/Nested
// and dispatching every leaf to leaf().
func (s *Scope) decompose(e ast.Expr) error {
	switch n := e.(type) {
	case ast.BinaryOp:
		if n.Op == ast.OpAnd || n.Op == ast.OpOr {
			if err := s.decompose(n.Left); err != nil {
				return err
			}
			return s.decompose(n.Right)
		}
		return s.leaf(n)
	case ast.Nested:
		return s.decompose(n.Expr)
	default:
		return s.leaf(e)
	}
}

// leaf classifies and attaches one comparison/residual expression.
func (s *Scope) leaf(e ast.Expr) error {
	if bin, ok := e.(ast.BinaryOp); ok {
		if label, ok := bin.Left.(ast.LabelExpr); ok {
			return s.leafLabel(label, bin.Op, bin.Right, e)
		}
		if id, ok := bin.Left.(ast.IdExpr); ok {
			return s.leafID(id, bin.Op, bin.Right, e)
		}
	}
	return s.attachResidual(e)
}

func (s *Scope) leafLabel(label ast.LabelExpr, op ast.BinaryOperator, value ast.Expr, whole ast.Expr) error {
	name := identName(label.Ident)
	el := s.element(name)
	if el == nil {
		return s.attachResidual(whole)
	}
	if op == ast.OpEq {
		el.Label = value
		return nil
	}
	el.Predicates = append(el.Predicates, whole)
	return nil
}

// leafID turns "e.id OP literal" into an ID comparator. Strict Gt/Lt
// are rewritten into a Gte/Lte comparator plus a NOT-IN residual
// predicate attached to the same element.
func (s *Scope) leafID(id ast.IdExpr, op ast.BinaryOperator, value ast.Expr, whole ast.Expr) error {
	name := identName(id.Ident)
	el := s.element(name)
	if el == nil {
		return s.attachResidual(whole)
	}

	switch op {
	case ast.OpEq:
		if err := s.checkMixedComparators(el, Eq); err != nil {
			return err
		}
		el.IDs = append(el.IDs, IDComparator{Kind: Eq, Value: value})
	case ast.OpGte:
		if err := s.checkMixedComparators(el, Gte); err != nil {
			return err
		}
		el.IDs = append(el.IDs, IDComparator{Kind: Gte, Value: value})
	case ast.OpLte:
		if err := s.checkMixedComparators(el, Lte); err != nil {
			return err
		}
		el.IDs = append(el.IDs, IDComparator{Kind: Lte, Value: value})
	case ast.OpGt:
		if err := s.checkMixedComparators(el, Gte); err != nil {
			return err
		}
		el.IDs = append(el.IDs, IDComparator{Kind: Gte, Value: value})
		el.Predicates = append(el.Predicates, notIn(id, value))
	case ast.OpLt:
		if err := s.checkMixedComparators(el, Lte); err != nil {
			return err
		}
		el.IDs = append(el.IDs, IDComparator{Kind: Lte, Value: value})
		el.Predicates = append(el.Predicates, notIn(id, value))
	default:
		el.Predicates = append(el.Predicates, whole)
	}
	return nil
}

// checkMixedComparators rejects a strict Eq mixed with any inequality
// on the same element's id, resolved
// here as a typed SemanticError (see DESIGN.md).
func (s *Scope) checkMixedComparators(el *ElementPattern, adding ComparatorKind) error {
	hasEq, hasIneq := adding == Eq, adding != Eq
	for _, c := range el.IDs {
		if c.Kind == Eq {
			hasEq = true
		} else {
			hasIneq = true
		}
	}
	if hasEq && hasIneq {
		return errs.Semanticf("element %q mixes an equality id comparator with an inequality id comparator", el.Name)
	}
	return nil
}

// notIn synthesizes the residual "NOT IN(e.id, v)" predicate for a
// strict Gt/Lt rewritten into a half-open range.
func notIn(id ast.IdExpr, value ast.Expr) ast.Expr {
	return ast.UnaryOp{
		Op: token.Keyword, // NOT
		Expr: ast.Function{
			FuncName:  "IN",
			Arguments: []ast.Expr{id, value},
		},
	}
}

// attachResidual attaches e to its sole referenced element's
// predicates, or keeps it as a top-level residual condition if zero or
// more than one distinct element is referenced.
func (s *Scope) attachResidual(e ast.Expr) error {
	if name, ok := soleElement(e); ok {
		if el := s.element(name); el != nil {
			el.Predicates = append(el.Predicates, e)
			return nil
		}
	}
	s.Residual = append(s.Residual, e)
	return nil
}

// soleElement collects every compound/label/id element reference in e
// and reports its name if exactly one distinct element is referenced.
func soleElement(e ast.Expr) (string, bool) {
	names := map[string]bool{}
	collectElements(e, names)
	if len(names) != 1 {
		return "", false
	}
	for name := range names {
		return name, true
	}
	return "", false
}

func collectElements(e ast.Expr, out map[string]bool) {
	switch n := e.(type) {
	case ast.CompoundIdentifier:
		if len(n.Parts) > 0 {
			out[n.Parts[0]] = true
		}
	case ast.CompoundWildcard:
		if len(n.Parts) > 0 {
			out[n.Parts[0]] = true
		}
	case ast.LabelExpr:
		out[identName(n.Ident)] = true
	case ast.IdExpr:
		out[identName(n.Ident)] = true
	case ast.Function:
		for _, arg := range n.Arguments {
			collectElements(arg, out)
		}
	case ast.UnaryOp:
		collectElements(n.Expr, out)
	case ast.BinaryOp:
		collectElements(n.Left, out)
		collectElements(n.Right, out)
	case ast.Nested:
		collectElements(n.Expr, out)
	}
}
