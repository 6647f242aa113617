/*
File: srclang/parser/parser.go
*/

// Package parser turns a token.Token stream into an *ast.Program using
// Pratt (top-down operator precedence) parsing: each token type that
// can start an expression registers a unary parse function, and each
// token type that can continue one registers a binary parse function
// keyed to its binding power.
package parser

import (
	"fmt"
	"strconv"

	"github.com/srclang/srclang/ast"
	"github.com/srclang/srclang/lexer"
	"github.com/srclang/srclang/token"
)

type unaryParseFunction func() ast.Expression
type binaryParseFunction func(ast.Expression) ast.Expression

// Parser holds the token lookahead window (CurrToken/NextToken) and the
// two function tables the Pratt core dispatches through. Errors
// accumulate rather than aborting the parse, so a single malformed
// statement doesn't prevent the rest of the program from being checked.
type Parser struct {
	Lex lexer.Lexer

	CurrToken token.Token
	NextToken token.Token

	UnaryFuncs  map[token.Type]unaryParseFunction
	BinaryFuncs map[token.Type]binaryParseFunction

	errs []string
}

// New builds a Parser over an already-constructed lexer and primes the
// two-token lookahead window.
//
// Parameters:
//   - l: a lexer positioned at the start of the source to parse
//
// Returns:
//   - *Parser: a parser ready to have ParseProgram called on it
func New(l lexer.Lexer) *Parser {
	par := &Parser{Lex: l}
	par.init()
	return par
}

func (par *Parser) init() {
	par.UnaryFuncs = make(map[token.Type]unaryParseFunction)
	par.BinaryFuncs = make(map[token.Type]binaryParseFunction)

	par.registerUnaryFuncs(par.parseIdentifier, token.IDENT)
	par.registerUnaryFuncs(par.parseIntegerLiteral, token.INT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, token.TRUE, token.FALSE)
	par.registerUnaryFuncs(par.parsePrefixExpression, token.BANG, token.MINUS)
	par.registerUnaryFuncs(par.parseGroupedExpression, token.LPAREN)
	par.registerUnaryFuncs(par.parseIfExpression, token.IF)
	par.registerUnaryFuncs(par.parseFunctionLiteral, token.FUNCTION)

	par.registerBinaryFuncs(par.parseInfixExpression,
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.GT)
	par.registerBinaryFuncs(par.parseCallExpression, token.LPAREN)

	// Two advances prime both CurrToken and NextToken before any parse
	// rule runs.
	par.advance()
	par.advance()
}

// registerUnaryFuncs and registerBinaryFuncs take a variadic token list
// so one parse function can be wired to every token type that starts
// (or continues) the same kind of expression, e.g. TRUE and FALSE both
// route through parseBooleanLiteral.
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, types ...token.Type) {
	for _, t := range types {
		par.UnaryFuncs[t] = fn
	}
}

func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, types ...token.Type) {
	for _, t := range types {
		par.BinaryFuncs[t] = fn
	}
}

func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

func (par *Parser) currTokenIs(t token.Type) bool { return par.CurrToken.Type == t }
func (par *Parser) nextTokenIs(t token.Type) bool { return par.NextToken.Type == t }

// expectAdvance checks NextToken against t; on a match it advances and
// reports success, otherwise it records a positioned error and leaves
// the token stream untouched so the caller can attempt recovery.
func (par *Parser) expectAdvance(t token.Type) bool {
	if par.nextTokenIs(t) {
		par.advance()
		return true
	}
	par.addError(fmt.Sprintf("[%d:%d] PARSER ERROR: expected next token to be %s, got %s instead",
		par.NextToken.Line, par.NextToken.Column, t, par.NextToken.Type))
	return false
}

func (par *Parser) addError(msg string) {
	par.errs = append(par.errs, msg)
}

// Errors returns every parse error collected so far, in the order
// encountered.
func (par *Parser) Errors() []string {
	return par.errs
}

func (par *Parser) currPrecedence() int { return getPrecedence(&par.CurrToken) }
func (par *Parser) nextPrecedence() int { return getPrecedence(&par.NextToken) }

// ParseProgram parses the whole token stream into a Program, one
// statement at a time, collecting errors rather than stopping at the
// first one so callers (the REPL, tests) see every problem in one pass.
func (par *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !par.currTokenIs(token.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		par.advance()
	}

	return program
}

func (par *Parser) parseStatement() ast.Statement {
	switch par.CurrToken.Type {
	case token.LET:
		return par.parseLetStatement()
	case token.RETURN:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement tolerates two malformed shapes instead of aborting
// the whole parse: `let = 5` (no name) and `let x 5` (no `=`). Both
// record a pinned error message and return a statement with Name or
// Value left nil. The evaluator turns a nil Name into a runtime error
// and evaluates a nil Value to Null.
func (par *Parser) parseLetStatement() *ast.LetStmt {
	stmt := &ast.LetStmt{Token: par.CurrToken}

	if !par.nextTokenIs(token.IDENT) {
		par.addError("Expected identifier after 'let'")
		return stmt
	}
	par.advance()
	stmt.Name = &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal}

	if !par.nextTokenIs(token.ASSIGN) {
		par.addError("Expected '=' after variable name")
		return stmt
	}
	par.advance()
	par.advance()

	stmt.Value = par.parseExpression(MINIMUM_PRIORITY)

	if par.nextTokenIs(token.SEMICOLON) {
		par.advance()
	}

	return stmt
}

func (par *Parser) parseReturnStatement() *ast.ReturnStmt {
	stmt := &ast.ReturnStmt{Token: par.CurrToken}

	par.advance()
	if !par.currTokenIs(token.SEMICOLON) {
		stmt.ReturnValue = par.parseExpression(MINIMUM_PRIORITY)
	}

	if par.nextTokenIs(token.SEMICOLON) {
		par.advance()
	}

	return stmt
}

func (par *Parser) parseExpressionStatement() *ast.ExprStmt {
	stmt := &ast.ExprStmt{Token: par.CurrToken}
	stmt.Expression = par.parseExpression(MINIMUM_PRIORITY)

	if par.nextTokenIs(token.SEMICOLON) {
		par.advance()
	}

	return stmt
}

// parseExpression is the Pratt core: it runs the unary rule for
// CurrToken, then keeps folding in binary rules for as long as
// NextToken binds tighter than currPrecedence.
func (par *Parser) parseExpression(currPrecedence int) ast.Expression {
	unaryFn, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		return nil
	}
	left := unaryFn()

	for !par.nextTokenIs(token.SEMICOLON) && currPrecedence < par.nextPrecedence() {
		binaryFn, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binaryFn(left)
	}

	return left
}

func (par *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseIntegerLiteral treats a literal too large for int64 as 0 rather
// than failing the parse — see the module's documented overflow
// behavior.
func (par *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: par.CurrToken}

	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		value = 0
	}
	lit.Value = value

	return lit
}

func (par *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: par.CurrToken, Value: par.currTokenIs(token.TRUE)}
}

// parsePrefixExpression handles `!x` and `-x`. A prefix operator with
// nothing after it (`!;`) records the pinned error and yields a node
// with a nil Right rather than panicking on a nil dereference later.
func (par *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.Prefix{Token: par.CurrToken, Operator: par.CurrToken.Literal}

	par.advance()

	if _, ok := par.UnaryFuncs[par.CurrToken.Type]; !ok {
		par.addError("Expected expression after prefix operator")
		return expr
	}
	expr.Right = par.parseExpression(PREFIX_PRIORITY)

	return expr
}

// parseInfixExpression handles every binary operator. A missing
// right-hand operand (`5 + ;`) records the pinned error and leaves
// Right nil instead of consuming the semicolon as an operand.
func (par *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.Infix{Token: par.CurrToken, Operator: par.CurrToken.Literal, Left: left}

	precedence := par.currPrecedence()
	par.advance()

	if _, ok := par.UnaryFuncs[par.CurrToken.Type]; !ok {
		par.addError("Expected expression after infix operator")
		return expr
	}
	expr.Right = par.parseExpression(precedence)

	return expr
}

func (par *Parser) parseGroupedExpression() ast.Expression {
	par.advance()

	expr := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(token.RPAREN) {
		return nil
	}

	return expr
}

func (par *Parser) parseIfExpression() ast.Expression {
	expr := &ast.If{Token: par.CurrToken}

	if !par.expectAdvance(token.LPAREN) {
		return nil
	}
	par.advance()
	expr.Condition = par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(token.RPAREN) {
		return nil
	}
	if !par.expectAdvance(token.LBRACE) {
		return nil
	}
	expr.Consequence = par.parseBlockStatement()

	if par.nextTokenIs(token.ELSE) {
		par.advance()
		if !par.expectAdvance(token.LBRACE) {
			return nil
		}
		expr.Alternative = par.parseBlockStatement()
	}

	return expr
}

// parseBlockStatement is deliberately tolerant of an unterminated block:
// reaching EOF before RBRACE just ends the block rather than recording
// an error (see the module's documented open question on this).
func (par *Parser) parseBlockStatement() *ast.Block {
	block := &ast.Block{Token: par.CurrToken, Statements: []ast.Statement{}}

	par.advance()

	for !par.currTokenIs(token.RBRACE) && !par.currTokenIs(token.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}

func (par *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.Function{Token: par.CurrToken}

	if !par.expectAdvance(token.LPAREN) {
		return nil
	}
	lit.Parameters = par.parseExpressionList(token.RPAREN)

	if !par.expectAdvance(token.LBRACE) {
		return nil
	}
	lit.Body = par.parseBlockStatement()

	return lit
}

func (par *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	call := &ast.Call{Token: par.CurrToken, Function: function}
	call.Arguments = par.parseExpressionList(token.RPAREN)
	return call
}

// parseExpressionList parses a comma-separated run of expressions up
// to (and consuming) end. It backs both call arguments and function
// parameters: the grammar for a parameter list is "any expression",
// the same as for an argument list — it is the evaluator, not the
// parser, that rejects a non-identifier parameter (see
// evaluator.Eval's *ast.Function case).
func (par *Parser) parseExpressionList(end token.Type) []ast.Expression {
	list := []ast.Expression{}

	if par.nextTokenIs(end) {
		par.advance()
		return list
	}

	par.advance()
	list = append(list, par.parseExpression(MINIMUM_PRIORITY))

	for par.nextTokenIs(token.COMMA) {
		par.advance()
		par.advance()
		list = append(list, par.parseExpression(MINIMUM_PRIORITY))
	}

	if !par.expectAdvance(end) {
		return nil
	}

	return list
}
