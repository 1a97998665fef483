package catalog

import "fmt"

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenNumber
	tokenLBrace
	tokenRBrace
	tokenColon
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
	tokenComma
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenNumber:
		return "number"
	case tokenLBrace:
		return `"{"`
	case tokenRBrace:
		return `"}"`
	case tokenColon:
		return `":"`
	case tokenStar:
		return `"*"`
	case tokenSlash:
		return `"/"`
	case tokenCaret:
		return `"^"`
	case tokenLParen:
		return `"("`
	case tokenRParen:
		return `")"`
	case tokenComma:
		return `","`
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// tokenize splits a catalog document into tokens with 1-based positions.
// Semicolons count as whitespace so both newline- and semicolon-separated
// property lists parse; "#" starts a comment running to end of line.
func tokenize(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1

	advance := func(c byte) {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ';':
			advance(c)
			i++
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				advance(src[i])
				i++
			}
		case isIdentStart(c):
			start, startLine, startCol := i, line, col
			for i < len(src) && isIdentPart(src[i]) {
				advance(src[i])
				i++
			}
			toks = append(toks, token{tokenIdent, src[start:i], startLine, startCol})
		case isDigit(c) || c == '-' || c == '+' || c == '.':
			start, startLine, startCol := i, line, col
			for i < len(src) && isNumberPart(src, i) {
				advance(src[i])
				i++
			}
			toks = append(toks, token{tokenNumber, src[start:i], startLine, startCol})
		default:
			kind, ok := punctKind(c)
			if !ok {
				return nil, &ParseError{
					Line:    line,
					Column:  col,
					Message: fmt.Sprintf("unexpected character %q", c),
				}
			}
			toks = append(toks, token{kind, string(c), line, col})
			advance(c)
			i++
		}
	}

	toks = append(toks, token{tokenEOF, "", line, col})
	return toks, nil
}

func punctKind(c byte) (tokenKind, bool) {
	switch c {
	case '{':
		return tokenLBrace, true
	case '}':
		return tokenRBrace, true
	case ':':
		return tokenColon, true
	case '*':
		return tokenStar, true
	case '/':
		return tokenSlash, true
	case '^':
		return tokenCaret, true
	case '(':
		return tokenLParen, true
	case ')':
		return tokenRParen, true
	case ',':
		return tokenComma, true
	}
	return 0, false
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberPart accepts the characters of a float literal with optional
// exponent. A sign is only part of the number directly after an e/E
// exponent marker or at the start; strconv.ParseFloat validates the final
// shape.
func isNumberPart(src string, i int) bool {
	c := src[i]
	if isDigit(c) || c == '.' || c == 'e' || c == 'E' {
		return true
	}
	if c == '-' || c == '+' {
		if i == 0 {
			return true
		}
		prev := src[i-1]
		return prev == 'e' || prev == 'E' || !isNumberTail(prev)
	}
	return false
}

func isNumberTail(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '-' || c == '+'
}
