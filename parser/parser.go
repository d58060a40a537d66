/*
Package parser implements a top-down operator precedence (Pratt) parser
over the token stream produced by package token, building the ast
statement/expression tree. Statement dispatch is a simple keyword
switch; expressions climb a fixed binding-power ladder so that
"a AND b = c" parses as "a AND (b = c)" and "a + b * c" as
"a + (b * c)".
*/
package parser

import (
	"github.com/krotik/vertexdb/ast"
	"github.com/krotik/vertexdb/errs"
	"github.com/krotik/vertexdb/token"
)

// bindingPower is the fixed precedence ladder: Lowest < AndOr < Compare
// < PlusMinus < MultDiv < Not.
type bindingPower int

const (
	bpLowest bindingPower = iota * 10
	bpAndOr
	bpCompare
	bpPlusMinus
	bpMultDiv
	bpNot
)

// Parse tokenizes and parses query into a list of statements, one per
// semicolon-free top-level clause (the grammar has no statement
// separator; Parse is typically called with a single statement).
func Parse(query string) ([]ast.Statement, error) {
	tokens, err := token.Tokenize(query)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}

	var stmts []ast.Statement
	for p.peek().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// ParseOne parses query and requires it to contain exactly one
// statement.
func ParseOne(query string) (ast.Statement, error) {
	stmts, err := Parse(query)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, errs.Parsef(0, "expected exactly one statement, got %d", len(stmts))
	}
	return stmts[0], nil
}

type parser struct {
	tokens []token.Token
	index  int
}

func (p *parser) peek() token.Token {
	return p.tokens[p.index]
}

func (p *parser) advance() token.Token {
	t := p.tokens[p.index]
	p.index++
	return t
}

func (p *parser) prev() {
	p.index--
}

func (p *parser) errf(format string, args ...interface{}) error {
	return errs.Parsef(p.index, format, args...)
}

func (p *parser) expect(want string) error {
	return p.errf("expected %s but found %q", want, p.peek().Text)
}

func (p *parser) isKeyword(kw string) bool {
	t := p.peek()
	return t.Kind == token.Keyword && t.Text == kw
}

func (p *parser) matchKeyword(kw string) bool {
	if p.isKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) matchKeywords(kws ...string) bool {
	for i, kw := range kws {
		t := p.tokens[p.index+i]
		if t.Kind != token.Keyword || t.Text != kw {
			return false
		}
	}
	p.index += len(kws)
	return true
}

func (p *parser) matchKind(k token.Kind) bool {
	if p.peek().Kind == k {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectKind(k token.Kind, want string) error {
	if !p.matchKind(k) {
		return p.expect(want)
	}
	return nil
}

func (p *parser) expectIdentifier() (string, error) {
	t := p.peek()
	if t.Kind != token.Identifier {
		return "", p.expect("identifier")
	}
	p.advance()
	return t.Text, nil
}

// parseStatement dispatches on the leading keyword. UPDATE and DELETE
// have no parse entry points: the grammar this parser implements never
// produces those statement kinds.
func (p *parser) parseStatement() (ast.Statement, error) {
	t := p.advance()
	if t.Kind != token.Keyword {
		return nil, p.errf("expected keyword but found %q", t.Text)
	}
	switch t.Text {
	case "SHOW":
		switch {
		case p.matchKeywords("VERTEX", "LABEL"):
			return ast.ShowVertexLabels{}, nil
		case p.matchKeywords("EDGE", "LABEL"):
			return ast.ShowEdgeLabels{}, nil
		case p.matchKeywords("PROPERTY", "KEY"):
			return ast.ShowPropertyKeys{}, nil
		default:
			return nil, p.errf("unknown SHOW query")
		}
	case "SELECT":
		return p.parseSelect()
	case "INSERT":
		return p.parseInsert()
	case "CREATE":
		return p.parseCreate()
	case "DROP":
		return p.parseDrop()
	default:
		return nil, p.errf("unexpected keyword %q", t.Text)
	}
}

func (p *parser) parseSelect() (ast.Statement, error) {
	items, err := p.parseSeparated(token.Comma, (*parser).parseExpr)
	if err != nil {
		return nil, err
	}

	from := ast.GraphPattern{}
	if p.matchKeyword("FROM") {
		from, err = p.parseGraphPattern()
		if err != nil {
			return nil, err
		}
	}

	var condition ast.Expr
	if p.matchKeyword("WHERE") {
		condition, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	return ast.Select{Items: items, From: from, Condition: condition}, nil
}

// parseGraphPattern builds the triplet chain from a FROM clause:
// (a)-[e]->(b), (b)<-[e2]-(c), (a)-[e3]->(d).
func (p *parser) parseGraphPattern() (ast.GraphPattern, error) {
	var triplets []ast.GraphTriplet

	curr, err := p.parseVertexExpr()
	if err != nil {
		return ast.GraphPattern{}, err
	}
	heads := []ast.Expr{curr}

	for {
		t := p.advance()
		switch t.Kind {
		case token.Minus:
			edge, err := p.parseEdgeExpr()
			if err != nil {
				return ast.GraphPattern{}, err
			}
			if err := p.expectKind(token.RightArrow, "->"); err != nil {
				return ast.GraphPattern{}, err
			}
			dst, err := p.parseVertexExpr()
			if err != nil {
				return ast.GraphPattern{}, err
			}
			triplets = append(triplets, ast.GraphTriplet{Src: curr, Edge: edge, Dst: dst})
			curr = dst
		case token.LeftArrow:
			edge, err := p.parseEdgeExpr()
			if err != nil {
				return ast.GraphPattern{}, err
			}
			if err := p.expectKind(token.Minus, "-"); err != nil {
				return ast.GraphPattern{}, err
			}
			src, err := p.parseVertexExpr()
			if err != nil {
				return ast.GraphPattern{}, err
			}
			triplets = append(triplets, ast.GraphTriplet{Src: src, Edge: edge, Dst: curr})
			curr = src
		case token.Comma:
			curr, err = p.parseVertexExpr()
			if err != nil {
				return ast.GraphPattern{}, err
			}
			heads = append(heads, curr)
		default:
			p.prev()
			return ast.GraphPattern{Triplets: triplets, Heads: heads}, nil
		}
	}
}

func (p *parser) parseVertexExpr() (ast.Expr, error) {
	if err := p.expectKind(token.LeftParen, "("); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RightParen, ")"); err != nil {
		return nil, err
	}
	return ast.Identifier{Name: name}, nil
}

func (p *parser) parseEdgeExpr() (ast.Expr, error) {
	if err := p.expectKind(token.LeftBracket, "["); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RightBracket, "]"); err != nil {
		return nil, err
	}
	return ast.Identifier{Name: name}, nil
}

func (p *parser) parseInsert() (ast.Statement, error) {
	switch {
	case p.matchKeyword("VERTEX"):
		return p.parseInsertVertex()
	case p.matchKeyword("EDGE"):
		return p.parseInsertEdge()
	default:
		return nil, p.expect("VERTEX or EDGE")
	}
}

func (p *parser) parseInsertVertex() (ast.Statement, error) {
	label, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("PROPERTIES"); err != nil {
		return nil, err
	}
	properties, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	vertexID, err := p.parseVertexID()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Colon, ":"); err != nil {
		return nil, err
	}
	values, err := p.parseValues()
	if err != nil {
		return nil, err
	}
	return ast.InsertVertex{Label: label, Properties: properties, VertexID: vertexID, Values: values}, nil
}

func (p *parser) parseInsertEdge() (ast.Statement, error) {
	label, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("PROPERTIES"); err != nil {
		return nil, err
	}
	properties, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	src, dst, err := p.parseEdgeVerticesID()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Colon, ":"); err != nil {
		return nil, err
	}
	values, err := p.parseValues()
	if err != nil {
		return nil, err
	}
	return ast.InsertEdge{Label: label, Properties: properties, SrcVertexID: src, DstVertexID: dst, Values: values}, nil
}

func (p *parser) expectKeyword(kw string) error {
	if !p.matchKeyword(kw) {
		return p.expect(kw)
	}
	return nil
}

func (p *parser) parseProperties() ([]string, error) {
	if err := p.expectKind(token.LeftParen, "("); err != nil {
		return nil, err
	}
	names, err := p.parseSeparated(token.Comma, (*parser).expectIdentifierExpr)
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RightParen, ")"); err != nil {
		return nil, err
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.(ast.Identifier).Name
	}
	return out, nil
}

// expectIdentifierExpr wraps expectIdentifier as an Expr-returning
// parse function so it can be shared with parseSeparated.
func (p *parser) expectIdentifierExpr() (ast.Expr, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.Identifier{Name: name}, nil
}

func (p *parser) parseVertexID() (ast.Expr, error) {
	if err := p.expectKind(token.LeftParen, "("); err != nil {
		return nil, err
	}
	id, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RightParen, ")"); err != nil {
		return nil, err
	}
	return id, nil
}

func (p *parser) parseEdgeVerticesID() (src, dst ast.Expr, err error) {
	if err = p.expectKind(token.LeftParen, "("); err != nil {
		return nil, nil, err
	}
	if src, err = p.parseExpr(); err != nil {
		return nil, nil, err
	}
	if err = p.expectKind(token.RightArrow, "->"); err != nil {
		return nil, nil, err
	}
	if dst, err = p.parseExpr(); err != nil {
		return nil, nil, err
	}
	if err = p.expectKind(token.RightParen, ")"); err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

func (p *parser) parseValues() ([]ast.Expr, error) {
	if err := p.expectKind(token.LeftParen, "("); err != nil {
		return nil, err
	}
	values, err := p.parseSeparated(token.Comma, func(p *parser) (ast.Expr, error) {
		t := p.peek()
		if t.Kind != token.String {
			return nil, p.errf("expected a string value literal, found %q", t.Text)
		}
		p.advance()
		return ast.Value{Kind: ast.ValueString, Text: t.Text}, nil
	})
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.RightParen, ")"); err != nil {
		return nil, err
	}
	return values, nil
}

func (p *parser) parseCreate() (ast.Statement, error) {
	switch {
	case p.matchKeywords("VERTEX", "LABEL"):
		return p.parseCreateVertexLabel()
	case p.matchKeywords("EDGE", "LABEL"):
		return p.parseCreateEdgeLabel()
	case p.matchKeywords("PROPERTY", "KEY"):
		return p.parseCreatePropertyKey()
	default:
		return nil, p.errf("unexpected token %q", p.peek().Text)
	}
}

func (p *parser) parseDrop() (ast.Statement, error) {
	switch {
	case p.matchKeywords("VERTEX", "LABEL"):
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		return ast.DropVertexLabel{Name: name}, nil
	case p.matchKeywords("EDGE", "LABEL"):
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		return ast.DropEdgeLabel{Name: name}, nil
	case p.matchKeywords("PROPERTY", "KEY"):
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		return ast.DropPropertyKey{Name: name}, nil
	default:
		return nil, p.errf("unexpected token %q", p.peek().Text)
	}
}

func (p *parser) parseCreateVertexLabel() (ast.Statement, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.CreateVertexLabel{Name: name}, nil
}

func (p *parser) parseCreateEdgeLabel() (ast.Statement, error) {
	if err := p.expectKind(token.LeftParen, "("); err != nil {
		return nil, err
	}
	names, err := p.parseSeparated(token.Comma, (*parser).expectIdentifierExpr)
	if err != nil {
		return nil, err
	}
	if len(names) != 2 {
		return nil, p.errf("unexpected length of create edge label clause")
	}
	if err := p.expectKind(token.RightParen, ")"); err != nil {
		return nil, err
	}
	return ast.CreateEdgeLabel{
		Name:         names[0].(ast.Identifier).Name,
		Multiplicity: names[1].(ast.Identifier).Name,
	}, nil
}

func (p *parser) parseCreatePropertyKey() (ast.Statement, error) {
	if err := p.expectKind(token.LeftParen, "("); err != nil {
		return nil, err
	}
	names, err := p.parseSeparated(token.Comma, (*parser).expectIdentifierExpr)
	if err != nil {
		return nil, err
	}
	if len(names) != 2 {
		return nil, p.errf("unexpected length of create property key clause")
	}
	if err := p.expectKind(token.RightParen, ")"); err != nil {
		return nil, err
	}
	return ast.CreatePropertyKey{
		Name:        names[0].(ast.Identifier).Name,
		Cardinality: names[1].(ast.Identifier).Name,
	}, nil
}

// parseExpr parses a full expression from the lowest binding power.
func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseExprTDOP(bpLowest)
}

func (p *parser) parseExprTDOP(rbp bindingPower) (ast.Expr, error) {
	expr, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		lbp, op, ok := p.infixOperator()
		if !ok || rbp >= lbp {
			break
		}
		expr, err = p.parseInfix(expr, op, lbp)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *parser) parsePrefix() (ast.Expr, error) {
	if p.matchKind(token.Star) {
		return ast.Wildcard{}, nil
	}
	if expr, ok := p.tryParseLiteral(); ok {
		return expr, nil
	}
	if expr, err := p.parseIdentifierOrFunction(); err == nil {
		return expr, nil
	}
	if expr, ok := p.tryParseUnaryOp(); ok {
		return expr, nil
	}
	if p.matchKind(token.LeftParen) {
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(token.RightParen, ")"); err != nil {
			return nil, err
		}
		return ast.Nested{Expr: inner}, nil
	}
	return nil, p.errf("syntax error at %q", p.peek().Text)
}

func (p *parser) tryParseLiteral() (ast.Expr, bool) {
	t := p.peek()
	switch {
	case t.Kind == token.String:
		p.advance()
		return ast.Value{Kind: ast.ValueString, Text: t.Text}, true
	case t.Kind == token.Number:
		p.advance()
		return ast.Value{Kind: ast.ValueNumber, Text: t.Text}, true
	case t.Kind == token.Keyword && t.Text == "TRUE":
		p.advance()
		return ast.Value{Kind: ast.ValueBoolean, Bool: true}, true
	case t.Kind == token.Keyword && t.Text == "FALSE":
		p.advance()
		return ast.Value{Kind: ast.ValueBoolean, Bool: false}, true
	case t.Kind == token.Keyword && t.Text == "NULL":
		p.advance()
		return ast.Value{Kind: ast.ValueNull}, true
	}
	return nil, false
}

// parseIdentifierOrFunction parses a bare identifier, a function call
// "f(a, b)", a dotted path "a.b.c"/"a.b.*", or the two dotted
// shorthands "a.label"/"a.id".
func (p *parser) parseIdentifierOrFunction() (ast.Expr, error) {
	t := p.peek()
	if t.Kind != token.Identifier {
		return nil, p.expect("identifier")
	}
	p.advance()
	name := t.Text

	if p.matchKind(token.LeftParen) {
		args, err := p.parseSeparated(token.Comma, (*parser).parseExpr)
		if err != nil {
			// zero-argument call: f()
			args = nil
		}
		if err := p.expectKind(token.RightParen, ")"); err != nil {
			return nil, err
		}
		return ast.Function{FuncName: name, Arguments: args}, nil
	}

	if p.matchKind(token.Dot) {
		parts := []string{name}
		for {
			nt := p.advance()
			switch {
			case nt.Kind == token.Identifier:
				parts = append(parts, nt.Text)
			case nt.Kind == token.Keyword && nt.Text == "LABEL":
				return ast.LabelExpr{Ident: ast.Identifier{Name: name}}, nil
			case nt.Kind == token.Keyword && nt.Text == "ID":
				return ast.IdExpr{Ident: ast.Identifier{Name: name}}, nil
			case nt.Kind == token.Star:
				return ast.CompoundWildcard{Parts: parts}, nil
			default:
				p.prev()
				return nil, p.expect("identifier or *")
			}
			if !p.matchKind(token.Dot) {
				break
			}
		}
		return ast.CompoundIdentifier{Parts: parts}, nil
	}

	return ast.Identifier{Name: name}, nil
}

func (p *parser) tryParseUnaryOp() (ast.Expr, bool) {
	t := p.peek()
	var opKind token.Kind
	var rbp bindingPower
	switch {
	case t.Kind == token.Plus:
		opKind, rbp = token.Plus, bpPlusMinus
	case t.Kind == token.Minus:
		opKind, rbp = token.Minus, bpPlusMinus
	case t.Kind == token.Keyword && t.Text == "NOT":
		opKind, rbp = token.Keyword, bpNot
	default:
		return nil, false
	}
	p.advance()
	inner, err := p.parseExprTDOP(rbp)
	if err != nil {
		p.prev()
		return nil, false
	}
	return ast.UnaryOp{Op: opKind, Expr: inner}, true
}

// infixOperator reports the binding power of the upcoming token if it
// is a binary operator, grounded on operator.rs's BinaryOperator table.
func (p *parser) infixOperator() (bindingPower, ast.BinaryOperator, bool) {
	t := p.peek()
	switch {
	case t.Kind == token.Plus:
		return bpPlusMinus, ast.OpPlus, true
	case t.Kind == token.Minus:
		return bpPlusMinus, ast.OpMinus, true
	case t.Kind == token.Star:
		return bpMultDiv, ast.OpMultiply, true
	case t.Kind == token.Slash:
		return bpMultDiv, ast.OpDivide, true
	case t.Kind == token.Percent:
		return bpMultDiv, ast.OpModulus, true
	case t.Kind == token.Gt:
		return bpCompare, ast.OpGt, true
	case t.Kind == token.Lt:
		return bpCompare, ast.OpLt, true
	case t.Kind == token.Gte:
		return bpCompare, ast.OpGte, true
	case t.Kind == token.Lte:
		return bpCompare, ast.OpLte, true
	case t.Kind == token.Eq, t.Kind == token.DoubleEq:
		return bpCompare, ast.OpEq, true
	case t.Kind == token.Neq:
		return bpCompare, ast.OpNotEq, true
	case t.Kind == token.Keyword && t.Text == "AND":
		return bpAndOr, ast.OpAnd, true
	case t.Kind == token.Keyword && t.Text == "OR":
		return bpAndOr, ast.OpOr, true
	}
	return bpLowest, 0, false
}

func (p *parser) parseInfix(left ast.Expr, op ast.BinaryOperator, lbp bindingPower) (ast.Expr, error) {
	p.advance()
	right, err := p.parseExprTDOP(lbp)
	if err != nil {
		return nil, err
	}
	return ast.BinaryOp{Op: op, Left: left, Right: right}, nil
}

func (p *parser) parseSeparated(sep token.Kind, parse func(*parser) (ast.Expr, error)) ([]ast.Expr, error) {
	var values []ast.Expr
	for {
		v, err := parse(p)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if !p.matchKind(sep) {
			break
		}
	}
	return values, nil
}
