package parser

import "github.com/srclang/srclang/token"

// Operator binding powers, spaced out (rather than a plain iota ladder)
// so a new precedence level can be slotted in between two existing ones
// without renumbering everything below it.
const (
	MINIMUM_PRIORITY    = 0
	EQUALITY_PRIORITY   = 90  // == !=
	RELATIONAL_PRIORITY = 100 // < >
	PLUS_PRIORITY       = 120 // + -
	MUL_PRIORITY        = 130 // * /
	PREFIX_PRIORITY     = 140 // -x, !x
	PAREN_PRIORITY      = 150 // call: add(x)
)

// getPrecedence reports the binding power of tok, or MINIMUM_PRIORITY if
// tok is not an infix/call operator. A switch, not a map, so the
// ordering above stays the one source of truth for how tight each
// operator binds.
func getPrecedence(tok *token.Token) int {
	switch tok.Type {
	case token.EQ, token.NOT_EQ:
		return EQUALITY_PRIORITY
	case token.LT, token.GT:
		return RELATIONAL_PRIORITY
	case token.PLUS, token.MINUS:
		return PLUS_PRIORITY
	case token.SLASH, token.ASTERISK:
		return MUL_PRIORITY
	case token.LPAREN:
		return PAREN_PRIORITY
	default:
		return MINIMUM_PRIORITY
	}
}
