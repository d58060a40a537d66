package scope_test

import (
	"testing"

	"github.com/krotik/vertexdb/ast"
	"github.com/krotik/vertexdb/parser"
	"github.com/krotik/vertexdb/scope"
)

func analyze(t *testing.T, q string) *scope.Scope {
	t.Helper()
	stmt, err := parser.ParseOne(q)
	if err != nil {
		t.Fatalf("parse %q: %v", q, err)
	}
	sc, err := scope.Analyze(stmt.(ast.Select))
	if err != nil {
		t.Fatalf("analyze %q: %v", q, err)
	}
	return sc
}

// TestSingleVertexPatternEqRegistersLookup covers the planner
// invariant that "(a) WHERE a.id = 'k'" must register vertex a with a
// single Eq id comparator even though the FROM clause has no edges.
func TestSingleVertexPatternEqRegistersLookup(t *testing.T) {
	sc := analyze(t, "SELECT * FROM (a) WHERE a.id = 'k'")
	a, ok := sc.Vertices["a"]
	if !ok {
		t.Fatalf("expected vertex a registered, got %+v", sc.Vertices)
	}
	if len(a.IDs) != 1 || a.IDs[0].Kind != scope.Eq {
		t.Fatalf("expected single Eq id comparator, got %+v", a.IDs)
	}
}

// TestStrictGtBecomesGteWithResidual covers: "a.id > 'k'" becomes a
// Gte comparator plus a residual NOT IN(a.id, 'k') predicate.
func TestStrictGtBecomesGteWithResidual(t *testing.T) {
	sc := analyze(t, "SELECT * FROM (a) WHERE a.id > 'k'")
	a := sc.Vertices["a"]
	if len(a.IDs) != 1 || a.IDs[0].Kind != scope.Gte {
		t.Fatalf("expected single Gte id comparator, got %+v", a.IDs)
	}
	if len(a.Predicates) != 1 {
		t.Fatalf("expected one residual predicate on a, got %+v", a.Predicates)
	}
	fn, ok := a.Predicates[0].(ast.UnaryOp).Expr.(ast.Function)
	if !ok || fn.FuncName != "IN" {
		t.Fatalf("expected NOT IN(...) predicate, got %+v", a.Predicates[0])
	}
}

// TestRangeBothBounds covers "a.id > 'k1' AND a.id < 'k2'": two
// comparators (Gte, Lte), each with its own NOT-IN residual.
func TestRangeBothBounds(t *testing.T) {
	sc := analyze(t, "SELECT * FROM (a) WHERE a.id > 'k1' AND a.id < 'k2'")
	a := sc.Vertices["a"]
	if len(a.IDs) != 2 {
		t.Fatalf("expected 2 id comparators, got %+v", a.IDs)
	}
	if len(a.Predicates) != 2 {
		t.Fatalf("expected 2 residual predicates, got %+v", a.Predicates)
	}
}

// TestMixedEqAndInequalityIsSemanticError covers the resolved open
// question: Eq mixed with an inequality on the same element's id is a
// typed error, not a silently-accepted constraint.
func TestMixedEqAndInequalityIsSemanticError(t *testing.T) {
	stmt, err := parser.ParseOne("SELECT * FROM (a) WHERE a.id = 'k1' AND a.id > 'k2'")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scope.Analyze(stmt.(ast.Select)); err == nil {
		t.Fatalf("expected a semantic error for mixed Eq/inequality id comparators")
	}
}

// TestLabelEqSetsLabel covers label-equality attachment: "a.label =
// 'person'" sets a's label and adds no predicate.
func TestLabelEqSetsLabel(t *testing.T) {
	sc := analyze(t, "SELECT * FROM (a) WHERE a.label = 'person'")
	a := sc.Vertices["a"]
	if a.Label == nil {
		t.Fatalf("expected label set, got nil")
	}
	if len(a.Predicates) != 0 {
		t.Fatalf("expected no residual predicates, got %+v", a.Predicates)
	}
}

// TestSingleHopPatternDecomposesPerElement is the scope-level half of a
// single-hop pattern with a label equality and an inequality id bound.
func TestSingleHopPatternDecomposesPerElement(t *testing.T) {
	sc := analyze(t, `SELECT a.label, b.prop FROM (a) -[e]-> (b) WHERE a.label='person' AND b.id > 'k'`)
	if len(sc.Triplets) != 1 {
		t.Fatalf("expected 1 triplet, got %d", len(sc.Triplets))
	}
	a, b, e := sc.Vertices["a"], sc.Vertices["b"], sc.Edges["e"]
	if a == nil || b == nil || e == nil {
		t.Fatalf("expected a, b vertices and e edge registered: %+v %+v", sc.Vertices, sc.Edges)
	}
	if e.Src != "a" || e.Dst != "b" {
		t.Fatalf("expected edge endpoints a->b, got src=%q dst=%q", e.Src, e.Dst)
	}
	if a.Label == nil {
		t.Fatalf("expected a.label constraint attached to vertex a")
	}
	if len(b.IDs) != 1 || b.IDs[0].Kind != scope.Gte {
		t.Fatalf("expected b to carry a Gte id comparator, got %+v", b.IDs)
	}
	if len(sc.Residual) != 0 {
		t.Fatalf("expected no top-level residual conditions, got %+v", sc.Residual)
	}
}

// TestAmbiguousPredicateBecomesResidual covers a leaf referencing two
// elements at once (no single attachment point).
func TestAmbiguousPredicateBecomesResidual(t *testing.T) {
	sc := analyze(t, `SELECT * FROM (a) -[e]-> (b) WHERE a.prop = b.prop`)
	if len(sc.Residual) != 1 {
		t.Fatalf("expected 1 top-level residual condition, got %+v", sc.Residual)
	}
}
