/*
Package query dispatches parsed statements to the schema/vertex/edge
handlers for DDL and inserts, and interprets a planned operator tree
for SELECT. Execution uses the "buffer-on-demand slices" strategy: each
operator materializes its candidate rows into a slice before the next
stage consumes them, rather than a goroutine pipeline — consistent with
the single-threaded cooperative model the rest of the engine uses.
*/
package query

import (
	"strconv"
	"strings"

	"github.com/krotik/vertexdb/ast"
	"github.com/krotik/vertexdb/codec"
	"github.com/krotik/vertexdb/edge"
	"github.com/krotik/vertexdb/errs"
	"github.com/krotik/vertexdb/kvstore"
	"github.com/krotik/vertexdb/model"
	"github.com/krotik/vertexdb/plan"
	"github.com/krotik/vertexdb/schema"
	"github.com/krotik/vertexdb/scope"
	"github.com/krotik/vertexdb/vertex"
)

// Executor wires the three graph-element handlers together with direct
// KV access for the scan operators a SELECT's plan needs.
type Executor struct {
	kv     kvstore.KV
	Schema *schema.Handler
	Vertex *vertex.Handler
	Edge   *edge.Handler
}

// New builds an Executor over kv.
func New(kv kvstore.KV) *Executor {
	return &Executor{
		kv:     kv,
		Schema: schema.New(kv),
		Vertex: vertex.New(kv),
		Edge:   edge.New(kv),
	}
}

// Result is a column list plus a pull-style row source: each call to
// Rows returns the next row, or ok=false once exhausted.
type Result struct {
	Columns []string
	Rows    func() (row []string, ok bool, err error)
}

func sliceResult(columns []string, rows [][]string) *Result {
	i := 0
	return &Result{
		Columns: columns,
		Rows: func() ([]string, bool, error) {
			if i >= len(rows) {
				return nil, false, nil
			}
			r := rows[i]
			i++
			return r, true, nil
		},
	}
}

func statusResult(columns []string, row []string) *Result {
	return sliceResult(columns, [][]string{row})
}

// Execute dispatches stmt to the appropriate handler(s) and returns a
// Result, or an error for a malformed or unsupported statement.
func (e *Executor) Execute(stmt ast.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case ast.ShowVertexLabels:
		return e.showVertexLabels()
	case ast.ShowEdgeLabels:
		return e.showEdgeLabels()
	case ast.ShowPropertyKeys:
		return e.showPropertyKeys()
	case ast.CreateVertexLabel:
		return e.createVertexLabel(s)
	case ast.CreateEdgeLabel:
		return e.createEdgeLabel(s)
	case ast.CreatePropertyKey:
		return e.createPropertyKey(s)
	case ast.DropVertexLabel:
		return e.dropVertexLabel(s)
	case ast.DropEdgeLabel:
		return e.dropEdgeLabel(s)
	case ast.DropPropertyKey:
		return e.dropPropertyKey(s)
	case ast.InsertVertex:
		return e.insertVertex(s)
	case ast.InsertEdge:
		return e.insertEdge(s)
	case ast.Select:
		return e.selectRows(s)
	default:
		return nil, errs.Executionf("unsupported statement type %T", stmt)
	}
}

func (e *Executor) showVertexLabels() (*Result, error) {
	labels, err := e.Schema.GetVertexLabels()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(labels))
	for i, l := range labels {
		rows[i] = []string{strconv.FormatUint(l.ID, 10), l.Name}
	}
	return sliceResult([]string{"id", "name"}, rows), nil
}

func (e *Executor) showEdgeLabels() (*Result, error) {
	labels, err := e.Schema.GetEdgeLabels()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(labels))
	for i, l := range labels {
		rows[i] = []string{strconv.FormatUint(l.ID, 10), l.Name, l.Multiplicity.String()}
	}
	return sliceResult([]string{"id", "name", "multiplicity"}, rows), nil
}

func (e *Executor) showPropertyKeys() (*Result, error) {
	keys, err := e.Schema.GetPropertyKeys()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{strconv.FormatUint(k.ID, 10), k.Name, k.Cardinality.String()}
	}
	return sliceResult([]string{"id", "name", "cardinality"}, rows), nil
}

func (e *Executor) createVertexLabel(s ast.CreateVertexLabel) (*Result, error) {
	id, err := e.Schema.CreateVertexLabel(s.Name)
	if err != nil {
		return nil, err
	}
	return statusResult([]string{"id", "name", "status"}, []string{strconv.FormatUint(id, 10), s.Name, "CREATED"}), nil
}

func (e *Executor) createEdgeLabel(s ast.CreateEdgeLabel) (*Result, error) {
	mult, err := model.ParseMultiplicity(s.Multiplicity)
	if err != nil {
		return nil, err
	}
	id, err := e.Schema.CreateEdgeLabel(s.Name, mult)
	if err != nil {
		return nil, err
	}
	return statusResult([]string{"id", "name", "status"}, []string{strconv.FormatUint(id, 10), s.Name, "CREATED"}), nil
}

func (e *Executor) createPropertyKey(s ast.CreatePropertyKey) (*Result, error) {
	card, err := model.ParseCardinality(s.Cardinality)
	if err != nil {
		return nil, err
	}
	id, err := e.Schema.CreatePropertyKey(s.Name, card)
	if err != nil {
		return nil, err
	}
	return statusResult([]string{"id", "name", "status"}, []string{strconv.FormatUint(id, 10), s.Name, "CREATED"}), nil
}

func (e *Executor) dropVertexLabel(s ast.DropVertexLabel) (*Result, error) {
	l, ok, err := e.Schema.GetVertexLabelByName(s.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Semanticf("unknown vertex label: %s", s.Name)
	}
	if err := e.Schema.RemoveVertexLabel(l.ID); err != nil {
		return nil, err
	}
	return statusResult([]string{"status"}, []string{"1"}), nil
}

func (e *Executor) dropEdgeLabel(s ast.DropEdgeLabel) (*Result, error) {
	l, ok, err := e.Schema.GetEdgeLabelByName(s.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Semanticf("unknown edge label: %s", s.Name)
	}
	if err := e.Schema.RemoveEdgeLabel(l.ID); err != nil {
		return nil, err
	}
	return statusResult([]string{"status"}, []string{"1"}), nil
}

func (e *Executor) dropPropertyKey(s ast.DropPropertyKey) (*Result, error) {
	k, ok, err := e.Schema.GetPropertyKeyByName(s.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Semanticf("unknown property key: %s", s.Name)
	}
	if err := e.Schema.RemovePropertyKey(k.ID); err != nil {
		return nil, err
	}
	return statusResult([]string{"status"}, []string{"1"}), nil
}

func (e *Executor) insertVertex(s ast.InsertVertex) (*Result, error) {
	labelName, err := identOrStringValue(s.Label)
	if err != nil {
		return nil, err
	}
	label, ok, err := e.Schema.GetVertexLabelByName(labelName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Semanticf("unknown vertex label: %s", labelName)
	}

	id, err := stringValue(s.VertexID)
	if err != nil {
		return nil, err
	}
	if _, err := e.Vertex.Create(id, label.ID); err != nil {
		return nil, err
	}

	if err := e.addProperties(s.Properties, s.Values, func(keyID uint64, value string) error {
		return e.Vertex.AddProperty(id, keyID, value)
	}); err != nil {
		return nil, err
	}

	return statusResult([]string{"status"}, []string{"1"}), nil
}

func (e *Executor) insertEdge(s ast.InsertEdge) (*Result, error) {
	labelName, err := identOrStringValue(s.Label)
	if err != nil {
		return nil, err
	}
	label, ok, err := e.Schema.GetEdgeLabelByName(labelName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Semanticf("unknown edge label: %s", labelName)
	}

	src, err := stringValue(s.SrcVertexID)
	if err != nil {
		return nil, err
	}
	dst, err := stringValue(s.DstVertexID)
	if err != nil {
		return nil, err
	}

	ed, err := e.Edge.Create(src, dst, label.ID)
	if err != nil {
		return nil, err
	}

	if err := e.addProperties(s.Properties, s.Values, func(keyID uint64, value string) error {
		return e.Edge.AddProperty(&ed, keyID, value)
	}); err != nil {
		return nil, err
	}

	return statusResult([]string{"status"}, []string{"1"}), nil
}

func (e *Executor) addProperties(names []string, values []ast.Expr, add func(keyID uint64, value string) error) error {
	if len(names) != len(values) {
		return errs.Semanticf("property name/value count mismatch: %d names, %d values", len(names), len(values))
	}
	for i, name := range names {
		val, err := stringValue(values[i])
		if err != nil {
			return err
		}
		key, ok, err := e.Schema.GetPropertyKeyByName(name)
		if err != nil {
			return err
		}
		if !ok {
			return errs.Semanticf("unknown property key: %s", name)
		}
		if err := add(key.ID, val); err != nil {
			return err
		}
	}
	return nil
}

// identOrStringValue accepts either a bare label/edge name (parsed as
// an Identifier, the grammar's usual unquoted form) or a quoted string.
func identOrStringValue(e ast.Expr) (string, error) {
	switch v := e.(type) {
	case ast.Identifier:
		return v.Name, nil
	case ast.Value:
		if v.Kind == ast.ValueString {
			return v.Text, nil
		}
	}
	return "", errs.Executionf("expected an identifier or string literal, got %T", e)
}

// stringValue accepts only a quoted string literal, matching
// original_source's execute_expr, which resolves nothing but
// Value::String.
func stringValue(e ast.Expr) (string, error) {
	v, ok := e.(ast.Value)
	if !ok || v.Kind != ast.ValueString {
		return "", errs.Executionf("feature not implemented: non-string value %T", e)
	}
	return v.Text, nil
}

// row is one candidate binding produced while walking a path: element
// name to its decoded vertex or edge.
type row map[string]interface{}

func (e *Executor) selectRows(sel ast.Select) (*Result, error) {
	sc, err := scope.Analyze(sel)
	if err != nil {
		return nil, err
	}
	op := plan.Build(sc)

	proj, ok := op.(plan.Projection)
	if !ok {
		return nil, errs.Executionf("planner invariant violated: root operator must be a Projection")
	}

	var rows []row
	if proj.Source != nil {
		rows, err = e.execOperator(proj.Source, row{})
		if err != nil {
			return nil, err
		}
	} else {
		rows = []row{{}}
	}

	columns := make([]string, len(proj.Items))
	for i, item := range proj.Items {
		columns[i] = itemLabel(item)
	}

	out := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(proj.Items))
		for j, item := range proj.Items {
			cell, err := e.evalProjection(item, r)
			if err != nil {
				return nil, err
			}
			cells[j] = cell
		}
		out[i] = cells
	}
	return sliceResult(columns, out), nil
}

func itemLabel(item ast.Expr) string {
	switch v := item.(type) {
	case ast.Identifier:
		return v.Name
	case ast.CompoundIdentifier:
		return strings.Join(v.Parts, ".")
	case ast.CompoundWildcard:
		return strings.Join(v.Parts, ".") + ".*"
	case ast.Wildcard:
		return "*"
	case ast.LabelExpr:
		return identName(v.Ident) + ".label"
	case ast.IdExpr:
		return identName(v.Ident) + ".id"
	default:
		return "?"
	}
}

func identName(e ast.Expr) string {
	if id, ok := e.(ast.Identifier); ok {
		return id.Name
	}
	return ""
}

// execOperator materializes op's candidate rows, threading ctx (the
// bindings already fixed by enclosing operators) through every stage.
func (e *Executor) execOperator(op plan.Operator, ctx row) ([]row, error) {
	switch o := op.(type) {
	case plan.SimplePathJoin:
		return e.execPath(o.Operators, ctx)
	case plan.PredicateFilter:
		rows, err := e.execOperator(o.Source, ctx)
		if err != nil {
			return nil, err
		}
		var out []row
		for _, r := range rows {
			ok, err := e.evalAllPredicates(o.Predicates, r)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, r)
			}
		}
		return out, nil
	case plan.VertexFullScan:
		return e.scanVertexFull(o.Vertex, ctx)
	case plan.VertexLookup:
		return e.scanVertexLookup(o.Vertex, o.ID, ctx)
	case plan.VertexIdRangeScan:
		return e.scanVertexRange(o.Vertex, o.Lo, o.Hi, ctx)
	case plan.OutEdgeSeqScan:
		return e.scanOutEdges(o.Edge, o.Src, o.Label, ctx)
	default:
		return nil, errs.Executionf("unsupported operator %T", op)
	}
}

// execPath threads ops left to right, so a later operator (e.g. an
// edge scan keyed by an earlier vertex's id) sees every binding
// produced so far.
func (e *Executor) execPath(ops []plan.Operator, ctx row) ([]row, error) {
	if len(ops) == 0 {
		return []row{ctx}, nil
	}
	heads, err := e.execOperator(ops[0], ctx)
	if err != nil {
		return nil, err
	}
	var out []row
	for _, h := range heads {
		tails, err := e.execPath(ops[1:], h)
		if err != nil {
			return nil, err
		}
		out = append(out, tails...)
	}
	return out, nil
}

func cloneRow(ctx row, name string, value interface{}) row {
	out := make(row, len(ctx)+1)
	for k, v := range ctx {
		out[k] = v
	}
	out[name] = value
	return out
}

func (e *Executor) scanVertexFull(name string, ctx row) ([]row, error) {
	var out []row
	err := e.kv.ScanPrefix(kvstore.TreeVertex, codec.VertexPrefix(), func(key, value []byte) bool {
		v, derr := codec.DecodeVertex(key, value)
		if derr != nil {
			return false
		}
		out = append(out, cloneRow(ctx, name, v))
		return true
	})
	return out, err
}

func (e *Executor) scanVertexLookup(name string, idExpr ast.Expr, ctx row) ([]row, error) {
	id, err := e.evalString(idExpr, ctx)
	if err != nil {
		return nil, err
	}
	v, ok, err := e.Vertex.Get(id)
	if err != nil || !ok {
		return nil, err
	}
	return []row{cloneRow(ctx, name, v)}, nil
}

func (e *Executor) scanVertexRange(name string, loExpr, hiExpr ast.Expr, ctx row) ([]row, error) {
	var lo, hi *string
	if loExpr != nil {
		v, err := e.evalString(loExpr, ctx)
		if err != nil {
			return nil, err
		}
		lo = &v
	}
	if hiExpr != nil {
		v, err := e.evalString(hiExpr, ctx)
		if err != nil {
			return nil, err
		}
		hi = &v
	}

	var out []row
	err := e.kv.ScanPrefix(kvstore.TreeVertex, codec.VertexPrefix(), func(key, value []byte) bool {
		v, derr := codec.DecodeVertex(key, value)
		if derr != nil {
			return false
		}
		if codec.VertexKeyInRange(v.ID, lo, hi) {
			out = append(out, cloneRow(ctx, name, v))
		}
		return true
	})
	return out, err
}

func (e *Executor) scanOutEdges(name, srcName string, labelExpr ast.Expr, ctx row) ([]row, error) {
	srcVal, ok := ctx[srcName]
	if !ok {
		return nil, errs.Executionf("edge %q scanned before its source vertex %q was bound", name, srcName)
	}
	src, ok := srcVal.(codec.Vertex)
	if !ok {
		return nil, errs.Executionf("edge %q source %q is not a vertex binding", name, srcName)
	}

	var labelID *uint64
	if labelExpr != nil {
		labelName, err := e.evalString(labelExpr, ctx)
		if err != nil {
			return nil, err
		}
		l, ok, err := e.Schema.GetEdgeLabelByName(labelName)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errs.Semanticf("unknown edge label: %s", labelName)
		}
		labelID = &l.ID
	}

	prefix, err := codec.OutEdgePrefix(src.ID, labelID)
	if err != nil {
		return nil, err
	}

	var out []row
	scanErr := e.kv.ScanPrefix(kvstore.TreeEdge, prefix, func(key, value []byte) bool {
		ed, derr := codec.DecodeOutEdge(key, value)
		if derr != nil {
			return false
		}
		out = append(out, cloneRow(ctx, name, ed))
		return true
	})
	return out, scanErr
}

// evalAllPredicates evaluates every predicate against r (implicit AND).
func (e *Executor) evalAllPredicates(predicates []ast.Expr, r row) (bool, error) {
	for _, p := range predicates {
		ok, err := e.evalBool(p, r)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// evalBool evaluates a predicate expression against a bound row.
func (e *Executor) evalBool(expr ast.Expr, r row) (bool, error) {
	switch n := expr.(type) {
	case ast.UnaryOp:
		inner, err := e.evalBool(n.Expr, r)
		if err != nil {
			return false, err
		}
		return !inner, nil
	case ast.BinaryOp:
		switch n.Op {
		case ast.OpAnd:
			left, err := e.evalBool(n.Left, r)
			if err != nil || !left {
				return false, err
			}
			return e.evalBool(n.Right, r)
		case ast.OpOr:
			left, err := e.evalBool(n.Left, r)
			if err != nil {
				return false, err
			}
			if left {
				return true, nil
			}
			return e.evalBool(n.Right, r)
		case ast.OpEq:
			return e.evalEquality(n.Left, n.Right, r)
		case ast.OpNotEq:
			eq, err := e.evalEquality(n.Left, n.Right, r)
			return !eq, err
		}
		return false, errs.Executionf("unsupported predicate operator")
	case ast.Function:
		if n.FuncName == "IN" && len(n.Arguments) == 2 {
			return e.evalEquality(n.Arguments[0], n.Arguments[1], r)
		}
		return false, errs.Executionf("unsupported predicate function %s", n.FuncName)
	case ast.Nested:
		return e.evalBool(n.Expr, r)
	default:
		return false, errs.Executionf("unsupported predicate expression %T", expr)
	}
}

func (e *Executor) evalEquality(left, right ast.Expr, r row) (bool, error) {
	if label, ok := left.(ast.LabelExpr); ok {
		return e.evalLabelEquality(label, right, r)
	}
	lv, err := e.evalString(left, r)
	if err != nil {
		return false, err
	}
	rv, err := e.evalString(right, r)
	if err != nil {
		return false, err
	}
	return lv == rv, nil
}

func (e *Executor) evalLabelEquality(label ast.LabelExpr, value ast.Expr, r row) (bool, error) {
	name := identName(label.Ident)
	bound, ok := r[name]
	if !ok {
		return false, errs.Executionf("element %q not bound for label comparison", name)
	}
	labelName, err := e.evalString(value, r)
	if err != nil {
		return false, err
	}
	switch b := bound.(type) {
	case codec.Vertex:
		l, ok, err := e.Schema.GetVertexLabel(b.Label)
		if err != nil || !ok {
			return false, err
		}
		return l.Name == labelName, nil
	case codec.Edge:
		l, ok, err := e.Schema.GetEdgeLabel(b.Label)
		if err != nil || !ok {
			return false, err
		}
		return l.Name == labelName, nil
	}
	return false, errs.Executionf("unsupported label comparison target")
}

// evalString resolves an expression to its string value for id/label
// comparisons: literals directly, min/max over already-literal
// arguments, and EdgeEndpointRef by reading the bound edge's dst id.
func (e *Executor) evalString(expr ast.Expr, r row) (string, error) {
	switch n := expr.(type) {
	case ast.Value:
		switch n.Kind {
		case ast.ValueString, ast.ValueNumber:
			return n.Text, nil
		case ast.ValueBoolean:
			return strconv.FormatBool(n.Bool), nil
		case ast.ValueNull:
			return "", nil
		}
	case plan.EdgeEndpointRef:
		bound, ok := r[n.Edge]
		if !ok {
			return "", errs.Executionf("edge %q not bound for endpoint reference", n.Edge)
		}
		ed, ok := bound.(codec.Edge)
		if !ok {
			return "", errs.Executionf("element %q is not an edge binding", n.Edge)
		}
		return ed.DstID, nil
	case ast.Function:
		if len(n.Arguments) == 0 {
			return "", errs.Executionf("function %s has no arguments", n.FuncName)
		}
		values := make([]string, len(n.Arguments))
		for i, arg := range n.Arguments {
			v, err := e.evalString(arg, r)
			if err != nil {
				return "", err
			}
			values[i] = v
		}
		switch n.FuncName {
		case "min":
			return minString(values), nil
		case "max":
			return maxString(values), nil
		}
		return "", errs.Executionf("unsupported function %s", n.FuncName)
	case ast.IdExpr:
		name := identName(n.Ident)
		bound, ok := r[name]
		if !ok {
			return "", errs.Executionf("element %q not bound for id reference", name)
		}
		if v, ok := bound.(codec.Vertex); ok {
			return v.ID, nil
		}
		if ed, ok := bound.(codec.Edge); ok {
			return strconv.FormatUint(ed.EdgeID, 10), nil
		}
	}
	return "", errs.Executionf("feature not implemented: cannot evaluate %T as a string", expr)
}

func minString(vs []string) string {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxString(vs []string) string {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// evalProjection renders one select item against a fully bound row.
func (e *Executor) evalProjection(item ast.Expr, r row) (string, error) {
	switch n := item.(type) {
	case ast.Value:
		return e.evalString(n, r)
	case ast.Wildcard:
		return "*", nil
	case ast.Identifier:
		bound, ok := r[n.Name]
		if !ok {
			return "", errs.Executionf("element %q not bound", n.Name)
		}
		return e.renderElement(bound)
	case ast.LabelExpr:
		name := identName(n.Ident)
		bound, ok := r[name]
		if !ok {
			return "", errs.Executionf("element %q not bound", name)
		}
		return e.renderLabel(bound)
	case ast.IdExpr:
		return e.evalString(n, r)
	case ast.CompoundIdentifier:
		if len(n.Parts) != 2 {
			return "", errs.Executionf("feature not implemented: compound identifier depth %d", len(n.Parts))
		}
		return e.renderProperty(n.Parts[0], n.Parts[1], r)
	default:
		return "", errs.Executionf("feature not implemented: cannot project %T", item)
	}
}

func (e *Executor) renderElement(bound interface{}) (string, error) {
	switch b := bound.(type) {
	case codec.Vertex:
		return b.ID, nil
	case codec.Edge:
		return b.SrcID + "->" + b.DstID, nil
	}
	return "", errs.Executionf("unsupported bound element type %T", bound)
}

func (e *Executor) renderLabel(bound interface{}) (string, error) {
	switch b := bound.(type) {
	case codec.Vertex:
		l, ok, err := e.Schema.GetVertexLabel(b.Label)
		if err != nil || !ok {
			return "", err
		}
		return l.Name, nil
	case codec.Edge:
		l, ok, err := e.Schema.GetEdgeLabel(b.Label)
		if err != nil || !ok {
			return "", err
		}
		return l.Name, nil
	}
	return "", errs.Executionf("unsupported bound element type %T", bound)
}

func (e *Executor) renderProperty(elementName, propName string, r row) (string, error) {
	bound, ok := r[elementName]
	if !ok {
		return "", errs.Executionf("element %q not bound", elementName)
	}
	key, ok, err := e.Schema.GetPropertyKeyByName(propName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.Semanticf("unknown property key: %s", propName)
	}

	var blob []byte
	switch b := bound.(type) {
	case codec.Vertex:
		blob = b.Properties
	case codec.Edge:
		blob = b.Properties
	default:
		return "", errs.Executionf("unsupported bound element type %T", bound)
	}

	props, err := codec.GetProperty(blob, key.ID)
	if err != nil {
		return "", err
	}
	if len(props) == 0 {
		return "", nil
	}
	values := make([]string, len(props))
	for i, p := range props {
		values[i] = p.Value
	}
	return strings.Join(values, ","), nil
}
