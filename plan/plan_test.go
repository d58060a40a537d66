package plan_test

import (
	"testing"

	"github.com/krotik/vertexdb/ast"
	"github.com/krotik/vertexdb/parser"
	"github.com/krotik/vertexdb/plan"
	"github.com/krotik/vertexdb/scope"
)

func build(t *testing.T, q string) plan.Operator {
	t.Helper()
	stmt, err := parser.ParseOne(q)
	if err != nil {
		t.Fatalf("parse %q: %v", q, err)
	}
	sc, err := scope.Analyze(stmt.(ast.Select))
	if err != nil {
		t.Fatalf("analyze %q: %v", q, err)
	}
	return plan.Build(sc)
}

// TestSingleVertexLookupNoRangeScan covers: "(a) WHERE a.id = 'k'"
// plans to Projection(VertexLookup{a,'k'}) with no range scan and no
// SimplePathJoin wrapper.
func TestSingleVertexLookupNoRangeScan(t *testing.T) {
	op := build(t, "SELECT * FROM (a) WHERE a.id = 'k'")
	proj, ok := op.(plan.Projection)
	if !ok {
		t.Fatalf("expected top-level Projection, got %#v", op)
	}
	lookup, ok := proj.Source.(plan.VertexLookup)
	if !ok {
		t.Fatalf("expected VertexLookup directly under Projection, got %#v", proj.Source)
	}
	if lookup.Vertex != "a" {
		t.Fatalf("unexpected vertex name: %q", lookup.Vertex)
	}
}

// TestStrictGtProducesRangeScanWithResidual covers: "a.id > 'k'" plans
// to a VertexIdRangeScan{a,(Some('k'),None)} wrapped in a
// PredicateFilter carrying the NOT IN residual.
func TestStrictGtProducesRangeScanWithResidual(t *testing.T) {
	op := build(t, "SELECT * FROM (a) WHERE a.id > 'k'")
	proj := op.(plan.Projection)
	filter, ok := proj.Source.(plan.PredicateFilter)
	if !ok {
		t.Fatalf("expected PredicateFilter, got %#v", proj.Source)
	}
	rangeScan, ok := filter.Source.(plan.VertexIdRangeScan)
	if !ok {
		t.Fatalf("expected VertexIdRangeScan, got %#v", filter.Source)
	}
	if rangeScan.Lo == nil || rangeScan.Hi != nil {
		t.Fatalf("expected lo-bounded-only range, got lo=%#v hi=%#v", rangeScan.Lo, rangeScan.Hi)
	}
	if len(filter.Predicates) != 1 {
		t.Fatalf("expected 1 residual predicate, got %+v", filter.Predicates)
	}
}

// TestBothBoundsWrapMinMax covers: "a.id > 'k1' AND a.id < 'k2'" plans
// to a range (min('k1'), max('k2')).
func TestBothBoundsWrapMinMax(t *testing.T) {
	op := build(t, "SELECT * FROM (a) WHERE a.id > 'k1' AND a.id < 'k2'")
	proj := op.(plan.Projection)
	filter := proj.Source.(plan.PredicateFilter)
	rangeScan := filter.Source.(plan.VertexIdRangeScan)
	lo, ok := rangeScan.Lo.(ast.Function)
	if !ok || lo.FuncName != "min" {
		t.Fatalf("expected lo wrapped in min(...), got %#v", rangeScan.Lo)
	}
	hi, ok := rangeScan.Hi.(ast.Function)
	if !ok || hi.FuncName != "max" {
		t.Fatalf("expected hi wrapped in max(...), got %#v", rangeScan.Hi)
	}
}

// TestSingleHopPlanMatchesScenarioFour reproduces a single-hop pattern's
// exact expected operator shape.
func TestSingleHopPlanMatchesScenarioFour(t *testing.T) {
	op := build(t, `SELECT a.label, b.prop FROM (a) -[e]-> (b) WHERE a.label='person' AND b.id > 'k'`)
	proj, ok := op.(plan.Projection)
	if !ok {
		t.Fatalf("expected top-level Projection, got %#v", op)
	}
	join, ok := proj.Source.(plan.SimplePathJoin)
	if !ok {
		t.Fatalf("expected SimplePathJoin, got %#v", proj.Source)
	}
	if len(join.Operators) != 3 {
		t.Fatalf("expected 3 operators (a, e, b), got %d: %#v", len(join.Operators), join.Operators)
	}

	aFilter, ok := join.Operators[0].(plan.PredicateFilter)
	if !ok {
		t.Fatalf("expected a's operator to carry the label predicate, got %#v", join.Operators[0])
	}
	if _, ok := aFilter.Source.(plan.VertexFullScan); !ok {
		t.Fatalf("expected a to be a VertexFullScan, got %#v", aFilter.Source)
	}

	edgeScan, ok := join.Operators[1].(plan.OutEdgeSeqScan)
	if !ok || edgeScan.Src != "a" {
		t.Fatalf("expected OutEdgeSeqScan{src=a}, got %#v", join.Operators[1])
	}

	bFilter, ok := join.Operators[2].(plan.PredicateFilter)
	if !ok {
		t.Fatalf("expected b's operator to carry predicates, got %#v", join.Operators[2])
	}
	if _, ok := bFilter.Source.(plan.VertexIdRangeScan); !ok {
		t.Fatalf("expected b to be a VertexIdRangeScan, got %#v", bFilter.Source)
	}
	// NOT-IN residual plus the implicit equality link to the edge's dst.
	if len(bFilter.Predicates) != 2 {
		t.Fatalf("expected 2 predicates on b (NOT IN + implicit equality), got %+v", bFilter.Predicates)
	}
	foundLink := false
	for _, pr := range bFilter.Predicates {
		if bin, ok := pr.(ast.BinaryOp); ok && bin.Op == ast.OpEq {
			if _, ok := bin.Right.(plan.EdgeEndpointRef); ok {
				foundLink = true
			}
		}
	}
	if !foundLink {
		t.Fatalf("expected an implicit b.id = e.dst equality predicate, got %+v", bFilter.Predicates)
	}
}

func TestOperatorCountMatchesDistinctElements(t *testing.T) {
	op := build(t, `SELECT * FROM (a) -[e]-> (b), (b) -[e2]-> (c)`)
	proj := op.(plan.Projection)
	join := proj.Source.(plan.SimplePathJoin)
	if len(join.Operators) != 5 {
		t.Fatalf("expected 5 distinct elements (a,e,b,e2,c), got %d", len(join.Operators))
	}
}
