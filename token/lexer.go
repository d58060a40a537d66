package token

import (
	"strings"

	"github.com/krotik/vertexdb/errs"
)

// Tokenize scans query into a whitespace-filtered token stream, always
// ending in an EOF sentinel. Ambiguous two-character operators (==, !=,
// <=, >=, <-, ->) peek one rune ahead before committing to the shorter
// token.
func Tokenize(query string) ([]Token, error) {
	l := &lexer{runes: []rune(query), line: 1, col: 1}

	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			break
		}
		tokens = append(tokens, *tok)
	}
	tokens = append(tokens, Token{Kind: EOF, Line: l.line, Col: l.col})
	return tokens, nil
}

type lexer struct {
	runes []rune
	pos   int
	line  int
	col   int
}

func (l *lexer) peek() (rune, bool) {
	if l.pos >= len(l.runes) {
		return 0, false
	}
	return l.runes[l.pos], true
}

func (l *lexer) peekAt(offset int) (rune, bool) {
	if l.pos+offset >= len(l.runes) {
		return 0, false
	}
	return l.runes[l.pos+offset], true
}

func (l *lexer) advance() rune {
	r := l.runes[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else if r == '\t' {
		l.col += 4
	} else {
		l.col++
	}
	return r
}

func (l *lexer) errf(format string, args ...interface{}) (*Token, error) {
	return nil, errs.Tokenizef(l.line, l.col, format, args...)
}

// next returns the next non-whitespace token, or nil at end of input.
func (l *lexer) next() (*Token, error) {
	for {
		c, ok := l.peek()
		if !ok {
			return nil, nil
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			l.advance()
			continue
		}
		break
	}

	startLine, startCol := l.line, l.col
	c, _ := l.peek()

	switch {
	case c == '\'' || c == '"':
		return l.lexQuotedString(c)
	case isIdentStart(c):
		return l.lexIdentOrKeyword(startLine, startCol)
	case c >= '0' && c <= '9':
		return l.lexNumber(startLine, startCol)
	}

	two := func(second rune, oneKind, twoKind Kind) *Token {
		l.advance()
		if nc, ok := l.peek(); ok && nc == second {
			l.advance()
			return &Token{Kind: twoKind, Line: startLine, Col: startCol}
		}
		return &Token{Kind: oneKind, Line: startLine, Col: startCol}
	}

	switch c {
	case '(':
		l.advance()
		return &Token{Kind: LeftParen, Line: startLine, Col: startCol}, nil
	case ')':
		l.advance()
		return &Token{Kind: RightParen, Line: startLine, Col: startCol}, nil
	case '[':
		l.advance()
		return &Token{Kind: LeftBracket, Line: startLine, Col: startCol}, nil
	case ']':
		l.advance()
		return &Token{Kind: RightBracket, Line: startLine, Col: startCol}, nil
	case '=':
		return two('=', Eq, DoubleEq), nil
	case '!':
		l.advance()
		if nc, ok := l.peek(); ok && nc == '=' {
			l.advance()
			return &Token{Kind: Neq, Line: startLine, Col: startCol}, nil
		}
		return l.errf("unexpected character %q", '!')
	case '<':
		l.advance()
		if nc, ok := l.peek(); ok {
			if nc == '=' {
				l.advance()
				return &Token{Kind: Lte, Line: startLine, Col: startCol}, nil
			}
			if nc == '-' {
				l.advance()
				return &Token{Kind: LeftArrow, Line: startLine, Col: startCol}, nil
			}
		}
		return &Token{Kind: Lt, Line: startLine, Col: startCol}, nil
	case '>':
		return two('=', Gt, Gte), nil
	case '-':
		l.advance()
		if nc, ok := l.peek(); ok && nc == '>' {
			l.advance()
			return &Token{Kind: RightArrow, Line: startLine, Col: startCol}, nil
		}
		return &Token{Kind: Minus, Line: startLine, Col: startCol}, nil
	case '+':
		l.advance()
		return &Token{Kind: Plus, Line: startLine, Col: startCol}, nil
	case '*':
		l.advance()
		return &Token{Kind: Star, Line: startLine, Col: startCol}, nil
	case '/':
		l.advance()
		return &Token{Kind: Slash, Line: startLine, Col: startCol}, nil
	case '%':
		l.advance()
		return &Token{Kind: Percent, Line: startLine, Col: startCol}, nil
	case ',':
		l.advance()
		return &Token{Kind: Comma, Line: startLine, Col: startCol}, nil
	case '.':
		l.advance()
		return &Token{Kind: Dot, Line: startLine, Col: startCol}, nil
	case ':':
		l.advance()
		return &Token{Kind: Colon, Line: startLine, Col: startCol}, nil
	case ';':
		l.advance()
		return &Token{Kind: SemiColon, Line: startLine, Col: startCol}, nil
	}

	return l.errf("unexpected character %q", c)
}

func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '_'
}

func (l *lexer) lexIdentOrKeyword(line, col int) (*Token, error) {
	var sb strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !isIdentChar(c) {
			break
		}
		sb.WriteRune(l.advance())
	}
	s := sb.String()
	upper := strings.ToUpper(s)
	if Keywords[upper] {
		return &Token{Kind: Keyword, Text: upper, Line: line, Col: col}, nil
	}
	return &Token{Kind: Identifier, Text: s, Line: line, Col: col}, nil
}

func (l *lexer) lexNumber(line, col int) (*Token, error) {
	var sb strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !((c >= '0' && c <= '9') || c == '.') {
			break
		}
		sb.WriteRune(l.advance())
	}
	return &Token{Kind: Number, Text: sb.String(), Line: line, Col: col}, nil
}

func (l *lexer) lexQuotedString(quote rune) (*Token, error) {
	line, col := l.line, l.col
	l.advance() // opening quote
	var sb strings.Builder
	for {
		c, ok := l.peek()
		if !ok {
			return l.errf("unterminated string literal")
		}
		l.advance()
		if c == '\\' {
			if nc, ok := l.peek(); ok && nc == quote {
				l.advance()
				sb.WriteRune(quote)
				continue
			}
			sb.WriteRune(c)
			continue
		}
		if c == quote {
			return &Token{Kind: String, Text: sb.String(), Line: line, Col: col}, nil
		}
		sb.WriteRune(c)
	}
}
