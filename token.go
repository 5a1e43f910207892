// token.go
//
// Lexical analysis. Tokenize runs in two stages: the source text is first
// broken into partial tokens (single special characters, literal runs and
// whitespace markers), then adjacent partial tokens are resolved into full
// tokens with up to two tokens of lookahead. The second stage is what turns
// "=" into assignment but "==" into equality, and what rejects single "&"
// and "|".
package whale

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenType names a full token.
type TokenType int

const (
	PLUS TokenType = iota
	MINUS
	STAR
	SLASH
	PERCENT
	HAT
	LBRACE
	RBRACE
	COMMA
	SEMICOLON
	EQ
	NEQ
	GT
	LT
	GEQ
	LEQ
	AND
	OR
	NOT
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	HAT_ASSIGN
	AND_ASSIGN
	OR_ASSIGN
	IDENTIFIER
	INT
	FLOAT
	BOOLEAN
	STRING
)

// Token is one full token. Literal carries the payload for IDENTIFIER
// (string), INT (int64), FLOAT (float64), BOOLEAN (bool) and STRING
// (string); it is nil for every other type.
type Token struct {
	Type    TokenType
	Literal any
}

// isLeftsidedValue reports whether the token can stand immediately to the
// left of an operand position, which makes it illegal directly after a
// closing brace.
func (t TokenType) isLeftsidedValue() bool {
	switch t {
	case LBRACE, IDENTIFIER, INT, FLOAT, BOOLEAN, STRING:
		return true
	default:
		return false
	}
}

// isRightsidedValue reports whether the token completes an operand, which
// makes it illegal directly before an opening brace.
func (t TokenType) isRightsidedValue() bool {
	switch t {
	case RBRACE, IDENTIFIER, INT, FLOAT, BOOLEAN, STRING:
		return true
	default:
		return false
	}
}

func (t TokenType) isAssignment() bool {
	switch t {
	case ASSIGN, PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN,
		PERCENT_ASSIGN, HAT_ASSIGN, AND_ASSIGN, OR_ASSIGN:
		return true
	default:
		return false
	}
}

// partialKind names a first-stage token.
type partialKind int

const (
	ptToken partialKind = iota
	ptLiteral
	ptWhitespace
	ptEq
	ptExclamation
	ptGt
	ptLt
	ptAmpersand
	ptVerticalBar
	ptPlus
	ptMinus
	ptStar
	ptSlash
	ptPercent
	ptHat
)

type partialToken struct {
	kind    partialKind
	token   Token
	literal string
}

func (p partialToken) String() string {
	switch p.kind {
	case ptToken:
		return p.token.String()
	case ptLiteral:
		return p.literal
	case ptWhitespace:
		return " "
	case ptEq:
		return "="
	case ptExclamation:
		return "!"
	case ptGt:
		return ">"
	case ptLt:
		return "<"
	case ptAmpersand:
		return "&"
	case ptVerticalBar:
		return "|"
	case ptPlus:
		return "+"
	case ptMinus:
		return "-"
	case ptStar:
		return "*"
	case ptSlash:
		return "/"
	case ptPercent:
		return "%"
	case ptHat:
		return "^"
	default:
		return "?"
	}
}

// Tokenize turns source text into a token stream.
func Tokenize(src string) ([]Token, error) {
	partials, err := strToPartialTokens(src)
	if err != nil {
		return nil, err
	}
	return partialTokensToTokens(partials)
}

func strToPartialTokens(src string) ([]partialToken, error) {
	var partials []partialToken
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			partials = append(partials, partialToken{kind: ptLiteral, literal: literal.String()})
			literal.Reset()
		}
	}
	single := func(kind partialKind) {
		flush()
		partials = append(partials, partialToken{kind: kind})
	}
	token := func(tokenType TokenType, payload any) {
		flush()
		partials = append(partials, partialToken{
			kind:  ptToken,
			token: Token{Type: tokenType, Literal: payload},
		})
	}

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '"':
			flush()
			var text strings.Builder
			terminated := false
			i++
			for ; i < len(runes); i++ {
				if runes[i] == '"' {
					terminated = true
					break
				}
				if runes[i] != '\\' {
					text.WriteRune(runes[i])
					continue
				}
				if i+1 >= len(runes) {
					return nil, &Error{Kind: IllegalEscapeSequence, Identifier: `\`}
				}
				i++
				switch runes[i] {
				case '"':
					text.WriteRune('"')
				case '\\':
					text.WriteRune('\\')
				default:
					return nil, &Error{Kind: IllegalEscapeSequence, Identifier: `\` + string(runes[i])}
				}
			}
			if !terminated {
				return nil, &Error{Kind: UnterminatedString}
			}
			token(STRING, text.String())
		case '(':
			token(LBRACE, nil)
		case ')':
			token(RBRACE, nil)
		case ',':
			token(COMMA, nil)
		case ';':
			token(SEMICOLON, nil)
		case '+':
			single(ptPlus)
		case '-':
			single(ptMinus)
		case '*':
			single(ptStar)
		case '/':
			single(ptSlash)
		case '%':
			single(ptPercent)
		case '^':
			single(ptHat)
		case '=':
			single(ptEq)
		case '!':
			single(ptExclamation)
		case '>':
			single(ptGt)
		case '<':
			single(ptLt)
		case '&':
			single(ptAmpersand)
		case '|':
			single(ptVerticalBar)
		default:
			if unicode.IsSpace(c) {
				flush()
				if len(partials) == 0 || partials[len(partials)-1].kind != ptWhitespace {
					partials = append(partials, partialToken{kind: ptWhitespace})
				}
			} else {
				literal.WriteRune(c)
			}
		}
	}
	flush()
	return partials, nil
}

func partialTokensToTokens(partials []partialToken) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(partials); {
		first := partials[i]
		var second, third *partialToken
		if i+1 < len(partials) {
			second = &partials[i+1]
		}
		if i+2 < len(partials) {
			third = &partials[i+2]
		}

		cutoff := 1
		emit := func(tokenType TokenType) {
			tokens = append(tokens, Token{Type: tokenType})
		}
		pair := func(match partialKind, combined, alone TokenType) {
			if second != nil && second.kind == match {
				emit(combined)
				cutoff = 2
			} else {
				emit(alone)
			}
		}

		switch first.kind {
		case ptToken:
			tokens = append(tokens, first.token)
		case ptWhitespace:
		case ptLiteral:
			token, used := resolveLiteral(first.literal, second, third)
			tokens = append(tokens, token)
			cutoff = used
		case ptEq:
			pair(ptEq, EQ, ASSIGN)
		case ptExclamation:
			pair(ptEq, NEQ, NOT)
		case ptGt:
			pair(ptEq, GEQ, GT)
		case ptLt:
			pair(ptEq, LEQ, LT)
		case ptPlus:
			pair(ptEq, PLUS_ASSIGN, PLUS)
		case ptMinus:
			pair(ptEq, MINUS_ASSIGN, MINUS)
		case ptStar:
			pair(ptEq, STAR_ASSIGN, STAR)
		case ptSlash:
			pair(ptEq, SLASH_ASSIGN, SLASH)
		case ptPercent:
			pair(ptEq, PERCENT_ASSIGN, PERCENT)
		case ptHat:
			pair(ptEq, HAT_ASSIGN, HAT)
		case ptAmpersand:
			if second == nil || second.kind != ptAmpersand {
				return nil, unmatchedPartial(first, second)
			}
			if third != nil && third.kind == ptEq {
				emit(AND_ASSIGN)
				cutoff = 3
			} else {
				emit(AND)
				cutoff = 2
			}
		case ptVerticalBar:
			if second == nil || second.kind != ptVerticalBar {
				return nil, unmatchedPartial(first, second)
			}
			if third != nil && third.kind == ptEq {
				emit(OR_ASSIGN)
				cutoff = 3
			} else {
				emit(OR)
				cutoff = 2
			}
		}
		i += cutoff
	}
	return tokens, nil
}

// resolveLiteral interprets a literal run as a number, boolean or
// identifier. A run that is not a value by itself but is followed by a sign
// and another run is retried as one scientific-notation float, so "1.5e+10"
// lexes as a single literal.
func resolveLiteral(literal string, second, third *partialToken) (Token, int) {
	if n, err := parseDecOrHex(literal); err == nil {
		return Token{Type: INT, Literal: n}, 1
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return Token{Type: FLOAT, Literal: f}, 1
	}
	if literal == "true" || literal == "false" {
		return Token{Type: BOOLEAN, Literal: literal == "true"}, 1
	}
	if second != nil && third != nil && third.kind == ptLiteral {
		var sign string
		switch second.kind {
		case ptPlus:
			sign = "+"
		case ptMinus:
			sign = "-"
		}
		if sign != "" {
			if f, err := strconv.ParseFloat(literal+sign+third.literal, 64); err == nil {
				return Token{Type: FLOAT, Literal: f}, 3
			}
		}
	}
	return Token{Type: IDENTIFIER, Literal: literal}, 1
}

// parseDecOrHex parses a decimal integer, or a hexadecimal one with an "0x"
// prefix.
func parseDecOrHex(literal string) (int64, error) {
	if rest, found := strings.CutPrefix(literal, "0x"); found {
		return strconv.ParseInt(rest, 16, 64)
	}
	return strconv.ParseInt(literal, 10, 64)
}

func unmatchedPartial(first partialToken, second *partialToken) *Error {
	text := first.String()
	if second != nil {
		text += second.String()
	}
	return &Error{Kind: UnmatchedPartialToken, Identifier: text}
}

func (t Token) String() string {
	switch t.Type {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case HAT:
		return "^"
	case LBRACE:
		return "("
	case RBRACE:
		return ")"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case GT:
		return ">"
	case LT:
		return "<"
	case GEQ:
		return ">="
	case LEQ:
		return "<="
	case AND:
		return "&&"
	case OR:
		return "||"
	case NOT:
		return "!"
	case ASSIGN:
		return "="
	case PLUS_ASSIGN:
		return "+="
	case MINUS_ASSIGN:
		return "-="
	case STAR_ASSIGN:
		return "*="
	case SLASH_ASSIGN:
		return "/="
	case PERCENT_ASSIGN:
		return "%="
	case HAT_ASSIGN:
		return "^="
	case AND_ASSIGN:
		return "&&="
	case OR_ASSIGN:
		return "||="
	case IDENTIFIER:
		return t.Literal.(string)
	case STRING:
		return strconv.Quote(t.Literal.(string))
	case INT:
		return strconv.FormatInt(t.Literal.(int64), 10)
	case FLOAT:
		return strconv.FormatFloat(t.Literal.(float64), 'g', -1, 64)
	case BOOLEAN:
		return strconv.FormatBool(t.Literal.(bool))
	default:
		return "?"
	}
}
