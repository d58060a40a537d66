package query_test

import (
	"testing"

	"github.com/krotik/vertexdb/kvstore"
	"github.com/krotik/vertexdb/parser"
	"github.com/krotik/vertexdb/query"
)

func exec(t *testing.T, e *query.Executor, q string) *query.Result {
	t.Helper()
	stmt, err := parser.ParseOne(q)
	if err != nil {
		t.Fatalf("parse %q: %v", q, err)
	}
	res, err := e.Execute(stmt)
	if err != nil {
		t.Fatalf("execute %q: %v", q, err)
	}
	return res
}

func allRows(t *testing.T, res *query.Result) [][]string {
	t.Helper()
	var out [][]string
	for {
		row, ok, err := res.Rows()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		out = append(out, row)
	}
	return out
}

func TestCreateVertexLabelYieldsStatusRow(t *testing.T) {
	e := query.New(kvstore.NewMemStore())
	res := exec(t, e, "CREATE VERTEX LABEL person")
	rows := allRows(t, res)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "person" || rows[0][2] != "CREATED" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}

	show := exec(t, e, "SHOW VERTEX LABEL")
	rows = allRows(t, show)
	if len(rows) != 1 || rows[0][0] != "1" || rows[0][1] != "person" {
		t.Fatalf("unexpected SHOW VERTEX LABEL rows: %+v", rows)
	}
}

func TestCreateEdgeLabelAndPropertyKey(t *testing.T) {
	e := query.New(kvstore.NewMemStore())
	exec(t, e, "CREATE EDGE LABEL (knows, ONE2MANY)")
	res := exec(t, e, "SHOW EDGE LABEL")
	rows := allRows(t, res)
	if len(rows) != 1 || rows[0][1] != "knows" || rows[0][2] != "One2Many" {
		t.Fatalf("unexpected edge label rows: %+v", rows)
	}

	exec(t, e, "CREATE PROPERTY KEY (name, Single)")
	res = exec(t, e, "SHOW PROPERTY KEY")
	rows = allRows(t, res)
	if len(rows) != 1 || rows[0][1] != "name" || rows[0][2] != "Single" {
		t.Fatalf("unexpected property key rows: %+v", rows)
	}
}

func TestInsertVertexStatusAndReadback(t *testing.T) {
	e := query.New(kvstore.NewMemStore())
	exec(t, e, "CREATE VERTEX LABEL person")
	exec(t, e, "CREATE PROPERTY KEY (name, Single)")

	res := exec(t, e, "INSERT VERTEX person PROPERTIES (name) VALUES ('u1'):('alice')")
	rows := allRows(t, res)
	if len(rows) != 1 || rows[0][0] != "1" {
		t.Fatalf("unexpected insert status: %+v", rows)
	}

	sel := exec(t, e, "SELECT a.label, a.name FROM (a) WHERE a.id = 'u1'")
	rows = allRows(t, sel)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0] != "person" || rows[0][1] != "alice" {
		t.Fatalf("unexpected select row: %+v", rows[0])
	}
}

func TestInsertEdgeCreatesDualRowsVisibleToTraversal(t *testing.T) {
	e := query.New(kvstore.NewMemStore())
	exec(t, e, "CREATE VERTEX LABEL person")
	exec(t, e, "CREATE EDGE LABEL (knows, MANY2MANYSIMPLE)")
	exec(t, e, "CREATE PROPERTY KEY (name, Single)")
	exec(t, e, "INSERT VERTEX person PROPERTIES (name) VALUES ('u1'):('alice')")
	exec(t, e, "INSERT VERTEX person PROPERTIES (name) VALUES ('u2'):('bob')")

	res := exec(t, e, "INSERT EDGE knows PROPERTIES (name) VALUES ('u1'->'u2'):('best')")
	rows := allRows(t, res)
	if len(rows) != 1 || rows[0][0] != "1" {
		t.Fatalf("unexpected insert edge status: %+v", rows)
	}

	sel := exec(t, e, "SELECT a.id, b.id FROM (a) -[e]-> (b) WHERE a.id = 'u1'")
	rows = allRows(t, sel)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %+v", len(rows), rows)
	}
	if rows[0][0] != "u1" || rows[0][1] != "u2" {
		t.Fatalf("unexpected traversal row: %+v", rows[0])
	}
}

func TestSelectRangeScanWithLabelFilter(t *testing.T) {
	e := query.New(kvstore.NewMemStore())
	exec(t, e, "CREATE VERTEX LABEL person")
	exec(t, e, "CREATE VERTEX LABEL company")
	exec(t, e, "CREATE PROPERTY KEY (name, Single)")
	exec(t, e, "INSERT VERTEX person PROPERTIES (name) VALUES ('k1'):('a')")
	exec(t, e, "INSERT VERTEX person PROPERTIES (name) VALUES ('k2'):('b')")
	exec(t, e, "INSERT VERTEX company PROPERTIES (name) VALUES ('k3'):('c')")

	sel := exec(t, e, "SELECT a.id FROM (a) WHERE a.label = 'person' AND a.id > 'k0'")
	rows := allRows(t, sel)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
}

func TestDropVertexLabelThenUnknownLabelIsSemanticError(t *testing.T) {
	e := query.New(kvstore.NewMemStore())
	exec(t, e, "CREATE VERTEX LABEL person")
	exec(t, e, "CREATE PROPERTY KEY (name, Single)")
	exec(t, e, "DROP VERTEX LABEL person")

	stmt, err := parser.ParseOne("INSERT VERTEX person PROPERTIES (name) VALUES ('u1'):('alice')")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Execute(stmt); err == nil {
		t.Fatalf("expected an error inserting against a dropped label")
	}
}
