// Package calculator implements the small arithmetic-expression
// evaluator the root primecount package's Pi(string) entry point uses
// to parse inputs like "10^20" or "2^64 + 1". Grammar: + - * / % ^,
// decimal integer literals, unary minus, and parentheses, evaluated
// over wideint.Int128 so results beyond int64 don't overflow silently.
//
// Grounded on spec.md's named-but-unspecified Expression-evaluator
// collaborator; no arithmetic-expression library appears anywhere in
// the retrieved corpus, so this is a from-scratch recursive-descent
// parser in the corpus's own plain, lightly-commented style (see
// wideint and imath for the comparable density).
package calculator

import (
	"strconv"
	"strings"

	"primecount/wideint"
)

// SyntaxError reports a malformed expression, naming the offending
// substring and its byte offset within the original input.
type SyntaxError struct {
	Input  string
	Offset int
	Text   string
}

func (e *SyntaxError) Error() string {
	return "calculator: syntax error at offset " + strconv.Itoa(e.Offset) + ": " + e.Text
}

// Eval parses and evaluates expr, returning the result as an Int128.
func Eval(expr string) (wideint.Int128, error) {
	p := &parser{input: expr}
	p.skipSpace()
	v, err := p.parseExpr()
	if err != nil {
		return wideint.Int128{}, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return wideint.Int128{}, p.errorf("unexpected trailing input")
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(text string) error {
	return &SyntaxError{Input: p.input, Offset: p.pos, Text: text}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles the lowest-precedence operators: + -.
func (p *parser) parseExpr() (wideint.Int128, error) {
	v, err := p.parseTerm()
	if err != nil {
		return wideint.Int128{}, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return wideint.Int128{}, err
			}
			v = wideint.ToInt128(v.Add(rhs))
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return wideint.Int128{}, err
			}
			v = wideint.ToInt128(v.Sub(rhs))
		default:
			return v, nil
		}
	}
}

// parseTerm handles * / %.
func (p *parser) parseTerm() (wideint.Int128, error) {
	v, err := p.parseUnary()
	if err != nil {
		return wideint.Int128{}, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return wideint.Int128{}, err
			}
			v = wideint.ToInt128(v.Mul(rhs))
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return wideint.Int128{}, err
			}
			if rhs.Sign() == 0 {
				return wideint.Int128{}, p.errorf("division by zero")
			}
			v = v.Div(rhs)
		case '%':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return wideint.Int128{}, err
			}
			if rhs.Sign() == 0 {
				return wideint.Int128{}, p.errorf("division by zero")
			}
			quotient := v.Div(rhs)
			v = wideint.ToInt128(v.Sub(quotient.Mul(rhs)))
		default:
			return v, nil
		}
	}
}

// parsePower handles the right-associative ^ operator, binding tighter
// than unary minus's operand (so "-2^2" parses as "-(2^2)").
func (p *parser) parsePower() (wideint.Int128, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return wideint.Int128{}, err
	}
	p.skipSpace()
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	exp, err := p.parseUnary()
	if err != nil {
		return wideint.Int128{}, err
	}
	if exp.Sign() < 0 {
		return wideint.Int128{}, p.errorf("negative exponent")
	}
	return ipow(base, exp.Int64()), nil
}

func (p *parser) parseUnary() (wideint.Int128, error) {
	p.skipSpace()
	if p.peek() == '-' {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return wideint.Int128{}, err
		}
		return wideint.ToInt128(wideint.FromInt64(0).Sub(v)), nil
	}
	return p.parsePower()
}

func (p *parser) parsePrimary() (wideint.Int128, error) {
	p.skipSpace()
	if p.peek() == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return wideint.Int128{}, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return wideint.Int128{}, p.errorf("expected ')'")
		}
		p.pos++
		return v, nil
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (wideint.Int128, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return wideint.Int128{}, p.errorf("expected a number")
	}
	v, err := wideint.ParseInt128(p.input[start:p.pos])
	if err != nil {
		return wideint.Int128{}, p.errorf("invalid number " + strconv.Quote(strings.TrimSpace(p.input[start:p.pos])))
	}
	return v, nil
}

// ipow computes base^exp for exp >= 0 via repeated squaring.
func ipow(base wideint.Int128, exp int64) wideint.Int128 {
	result := wideint.FromInt64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = wideint.ToInt128(result.Mul(base))
		}
		base = wideint.ToInt128(base.Mul(base))
		exp >>= 1
	}
	return result
}
