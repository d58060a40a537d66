/*
Package plan lowers a *scope.Scope into a tree of physical operators
from the closed set described by the scoping rules: vertex scans/
lookups, edge prefix scans, predicate filters, projections, and the
path join that strings them together in triplet order.
*/
package plan

import (
	"github.com/krotik/vertexdb/ast"
	"github.com/krotik/vertexdb/scope"
)

// Operator is the closed set of physical operator nodes.
type Operator interface {
	operatorNode()
}

// VertexFullScan enumerates every vertex.
type VertexFullScan struct{ Vertex string }

// VertexLookup is a point lookup by id.
type VertexLookup struct {
	Vertex string
	ID     ast.Expr
}

// VertexIdRangeScan is a half- or fully-bounded id range scan; a nil
// bound is unbounded on that side.
type VertexIdRangeScan struct {
	Vertex string
	Lo, Hi ast.Expr
}

// OutEdgeSeqScan is a prefix scan over the OUT key layout, rooted at a
// produced source vertex.
type OutEdgeSeqScan struct {
	Edge  string
	Src   string
	Label ast.Expr // nil if unconstrained
}

// InEdgeSeqScan is the IN-layout counterpart; unused by the current
// lowering algorithm (every triplet lowers via its source vertex, see
// DESIGN.md) but kept as part of the closed operator set.
type InEdgeSeqScan struct {
	Edge  string
	Dst   string
	Label ast.Expr
}

// OutEdgeLookup/InEdgeLookup are fully-qualified point reads; unused by
// the triplet-walk lowering algorithm (no grammar construct pins all
// four key components at once) but present for operator-set parity.
type OutEdgeLookup struct {
	Edge          string
	Src, Dst      string
	Label, EdgeID ast.Expr
}

type InEdgeLookup struct {
	Edge          string
	Src, Dst      string
	Label, EdgeID ast.Expr
}

// PredicateFilter filters Source's rows by every predicate in
// Predicates (implicit AND).
type PredicateFilter struct {
	Source     Operator
	Predicates []ast.Expr
}

// Projection narrows Source's rows to Items.
type Projection struct {
	Source Operator
	Items  []ast.Expr
}

// SimplePathJoin is the logical n-ary join over a path's elements,
// preserving the scope's triplet order.
type SimplePathJoin struct {
	Operators []Operator
}

func (VertexFullScan) operatorNode()    {}
func (VertexLookup) operatorNode()      {}
func (VertexIdRangeScan) operatorNode() {}
func (OutEdgeSeqScan) operatorNode()    {}
func (InEdgeSeqScan) operatorNode()     {}
func (OutEdgeLookup) operatorNode()     {}
func (InEdgeLookup) operatorNode()      {}
func (PredicateFilter) operatorNode()   {}
func (Projection) operatorNode()        {}
func (SimplePathJoin) operatorNode()    {}

// EdgeEndpointRef is a plan-internal Expr: the id of edge Name's
// destination endpoint, used for the implicit "dst.id = edge.dst"
// equality the lowering algorithm injects. It satisfies ast.Expr through
// the embedded ast.Wildcard (whose exprNode method is promoted), so it
// can sit wherever scope/ast values do, without ast needing to know
// about the planner.
type EdgeEndpointRef struct {
	ast.Wildcard
	Edge string
}

// Build lowers sc into an operator tree.
func Build(sc *scope.Scope) Operator {
	p := &builder{scope: sc, produced: map[string]bool{}}
	var ops []Operator

	for _, triplet := range sc.Triplets {
		srcName := identName(triplet.Src)
		dstName := identName(triplet.Dst)
		edgeName := identName(triplet.Edge)

		if !p.produced[srcName] {
			if vp, ok := sc.Vertices[srcName]; ok {
				ops = append(ops, p.lowerVertex(vp))
				p.produced[srcName] = true
			}
		}

		if ep, ok := sc.Edges[edgeName]; ok && !p.produced[edgeName] {
			ops = append(ops, p.lowerEdge(ep))
			p.produced[edgeName] = true
		}

		if dvp, ok := sc.Vertices[dstName]; ok && !p.produced[dstName] {
			if len(dvp.IDs) == 0 {
				dvp.IDs = append(dvp.IDs, scope.IDComparator{
					Kind:  scope.Eq,
					Value: EdgeEndpointRef{Edge: edgeName},
				})
			} else {
				dvp.Predicates = append(dvp.Predicates, ast.BinaryOp{
					Op:    ast.OpEq,
					Left:  ast.IdExpr{Ident: ast.Identifier{Name: dstName}},
					Right: EdgeEndpointRef{Edge: edgeName},
				})
			}
			ops = append(ops, p.lowerVertex(dvp))
			p.produced[dstName] = true
		}
	}

	// A FROM clause with no triplets names only bare vertices ("(a)",
	// or "(a), (b)") — lower each of them directly.
	if len(ops) == 0 {
		for name, vp := range sc.Vertices {
			if !p.produced[name] {
				ops = append(ops, p.lowerVertex(vp))
				p.produced[name] = true
			}
		}
	}

	var path Operator
	switch len(ops) {
	case 0:
		path = nil
	case 1:
		path = ops[0]
	default:
		path = SimplePathJoin{Operators: ops}
	}

	if len(sc.Residual) > 0 && path != nil {
		path = PredicateFilter{Source: path, Predicates: sc.Residual}
	}

	return Projection{Source: path, Items: sc.Projections}
}

type builder struct {
	scope    *scope.Scope
	produced map[string]bool
}

func identName(e ast.Expr) string {
	if id, ok := e.(ast.Identifier); ok {
		return id.Name
	}
	return ""
}

// lowerVertex picks FullScan/Lookup/RangeScan from vp's id comparators
// and wraps in a PredicateFilter when the element carries a label or
// predicates; it never adds a Projection.
func (b *builder) lowerVertex(vp *scope.VertexPattern) Operator {
	var op Operator

	switch len(vp.IDs) {
	case 0:
		op = VertexFullScan{Vertex: vp.Name}
	case 1:
		c := vp.IDs[0]
		switch c.Kind {
		case scope.Eq:
			op = VertexLookup{Vertex: vp.Name, ID: c.Value}
		case scope.Gte:
			op = VertexIdRangeScan{Vertex: vp.Name, Lo: c.Value}
		case scope.Lte:
			op = VertexIdRangeScan{Vertex: vp.Name, Hi: c.Value}
		}
	default:
		var gtes, ltes []ast.Expr
		for _, c := range vp.IDs {
			switch c.Kind {
			case scope.Gte:
				gtes = append(gtes, c.Value)
			case scope.Lte:
				ltes = append(ltes, c.Value)
			case scope.Eq:
				gtes = append(gtes, c.Value)
				ltes = append(ltes, c.Value)
			}
		}
		var lo, hi ast.Expr
		if len(gtes) > 0 {
			lo = ast.Function{FuncName: "min", Arguments: gtes}
		}
		if len(ltes) > 0 {
			hi = ast.Function{FuncName: "max", Arguments: ltes}
		}
		op = VertexIdRangeScan{Vertex: vp.Name, Lo: lo, Hi: hi}
	}

	predicates := vp.Predicates
	if vp.Label != nil {
		labelEq := ast.BinaryOp{
			Op:    ast.OpEq,
			Left:  ast.LabelExpr{Ident: ast.Identifier{Name: vp.Name}},
			Right: vp.Label,
		}
		predicates = append([]ast.Expr{labelEq}, predicates...)
	}
	if len(predicates) > 0 {
		op = PredicateFilter{Source: op, Predicates: predicates}
	}
	// vp.Projections is left for the execution runtime to consult when
	// resolving column values; the planner emits a single top-level
	// Projection over the full item list rather than nesting one per
	// element (see DESIGN.md for the reasoning — the worked single-hop
	// example never shows a per-element Projection node).
	return op
}

// lowerEdge wraps an OutEdgeSeqScan rooted at ep.Src (the pattern's
// source vertex is always already produced by the time an edge is
// lowered, per the triplet-walk order).
func (b *builder) lowerEdge(ep *scope.EdgePattern) Operator {
	var op Operator = OutEdgeSeqScan{Edge: ep.Name, Src: ep.Src, Label: ep.Label}

	predicates := ep.Predicates
	if len(predicates) > 0 {
		op = PredicateFilter{Source: op, Predicates: predicates}
	}
	return op
}
