package main

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"vmint/pkg/errors"
	"vmint/pkg/intval"
)

// A tiny expression engine over Value: regexp2 token scanner, precedence
// climbing parser, direct evaluation in the selected mode.

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

var (
	spaceRe  = regexp2.MustCompile(`^[ \t\r\n]+`, 0)
	numberRe = regexp2.MustCompile(`^(0[xX][0-9a-fA-F]+|0[bB][01]+|0[oO][0-7]+|[0-9]+)`, 0)
	opRe     = regexp2.MustCompile(`^(<<|>>|[-+*/%&|^~()])`, 0)
)

// tokenize scans src into tokens, rejecting anything the grammar does not
// know.
func tokenize(src string) ([]token, error) {
	var toks []token
	rest := src
	for len(rest) > 0 {
		if m, _ := spaceRe.FindStringMatch(rest); m != nil {
			rest = rest[m.Length:]
			continue
		}
		if m, _ := numberRe.FindStringMatch(rest); m != nil {
			toks = append(toks, token{kind: tokNumber, text: m.String()})
			rest = rest[m.Length:]
			continue
		}
		if m, _ := opRe.FindStringMatch(rest); m != nil {
			kind := tokOp
			switch m.String() {
			case "(":
				kind = tokLParen
			case ")":
				kind = tokRParen
			}
			toks = append(toks, token{kind: kind, text: m.String()})
			rest = rest[m.Length:]
			continue
		}
		return nil, fmt.Errorf("unexpected character %q in expression", rest[0])
	}
	return toks, nil
}

// binaryPrec returns the binding strength of a binary operator, loosest
// first; ok is false for non-operators.
func binaryPrec(tok token) (prec int, ok bool) {
	if tok.kind != tokOp {
		return 0, false
	}
	switch tok.text {
	case "|":
		return 1, true
	case "^":
		return 2, true
	case "&":
		return 3, true
	case "<<", ">>":
		return 4, true
	case "+", "-":
		return 5, true
	case "*", "/", "%":
		return 6, true
	}
	return 0, false
}

type parser struct {
	toks []token
	pos  int
	mode intval.Mode
}

func evalExpression(src string, mode intval.Mode) (intval.Value, error) {
	toks, err := tokenize(src)
	if err != nil {
		return intval.NaN(), err
	}
	if len(toks) == 0 {
		return intval.NaN(), fmt.Errorf("empty expression")
	}
	p := &parser{toks: toks, mode: mode}
	value, err := p.parseExpr(1)
	if err != nil {
		return intval.NaN(), err
	}
	if p.pos != len(p.toks) {
		return intval.NaN(), fmt.Errorf("unexpected %q after expression", p.toks[p.pos].text)
	}
	return value, nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// parseExpr is a precedence climber: it consumes operators binding at least
// as tightly as minPrec, all left-associative.
func (p *parser) parseExpr(minPrec int) (intval.Value, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return intval.NaN(), err
	}
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		prec, isOp := binaryPrec(tok)
		if !isOp || prec < minPrec {
			break
		}
		p.pos++
		rhs, err := p.parseExpr(prec + 1)
		if err != nil {
			return intval.NaN(), err
		}
		lhs, err = p.apply(tok.text, lhs, rhs)
		if err != nil {
			return intval.NaN(), err
		}
	}
	return lhs, nil
}

func (p *parser) parseUnary() (intval.Value, error) {
	tok, ok := p.next()
	if !ok {
		return intval.NaN(), fmt.Errorf("unexpected end of expression")
	}
	switch {
	case tok.kind == tokNumber:
		return p.literal(tok.text)
	case tok.kind == tokLParen:
		inner, err := p.parseExpr(1)
		if err != nil {
			return intval.NaN(), err
		}
		if closing, ok := p.next(); !ok || closing.kind != tokRParen {
			return intval.NaN(), fmt.Errorf("missing closing parenthesis")
		}
		return inner, nil
	case tok.kind == tokOp && tok.text == "-":
		operand, err := p.parseUnary()
		if err != nil {
			return intval.NaN(), err
		}
		return intval.NegMode(p.mode, operand)
	case tok.kind == tokOp && tok.text == "~":
		operand, err := p.parseUnary()
		if err != nil {
			return intval.NaN(), err
		}
		return intval.NotMode(p.mode, operand)
	}
	return intval.NaN(), fmt.Errorf("unexpected %q", tok.text)
}

// literal parses a numeric token. In quiet mode an out-of-range literal is a
// NaN value, not a failure, matching the VM's quiet push semantics.
func (p *parser) literal(text string) (intval.Value, error) {
	value, err := intval.FromString(text)
	if err != nil {
		if p.mode == intval.QuietMode && errors.IsIntegerOverflow(err) {
			return intval.NaN(), nil
		}
		return intval.NaN(), err
	}
	return value, nil
}

func (p *parser) apply(op string, lhs, rhs intval.Value) (intval.Value, error) {
	switch op {
	case "+":
		return intval.AddMode(p.mode, lhs, rhs)
	case "-":
		return intval.SubMode(p.mode, lhs, rhs)
	case "*":
		return intval.MulMode(p.mode, lhs, rhs)
	case "/":
		q, _, err := intval.DivModMode(p.mode, lhs, rhs, intval.FloorRound)
		return q, err
	case "%":
		_, r, err := intval.DivModMode(p.mode, lhs, rhs, intval.FloorRound)
		return r, err
	case "&":
		return intval.AndMode(p.mode, lhs, rhs)
	case "|":
		return intval.OrMode(p.mode, lhs, rhs)
	case "^":
		return intval.XorMode(p.mode, lhs, rhs)
	case "<<", ">>":
		return p.shift(op, lhs, rhs)
	}
	return intval.NaN(), fmt.Errorf("unknown operator %q", op)
}

// maxShift bounds shift amounts the way the VM's shift opcodes do.
const maxShift = 1023

func (p *parser) shift(op string, lhs, rhs intval.Value) (intval.Value, error) {
	if rhs.IsNaN() {
		if p.mode == intval.QuietMode {
			return intval.NaN(), nil
		}
		return intval.NaN(), errors.NewNaNOperand("shift amount is NaN")
	}
	if rhs.IsNeg() || !rhs.UFitsIn(10) {
		if p.mode == intval.QuietMode {
			return intval.NaN(), nil
		}
		return intval.NaN(), errors.NewRange("shift amount %s out of 0..%d", rhs, maxShift)
	}
	amount, err := rhs.ToUint64()
	if err != nil {
		return intval.NaN(), err
	}
	if op == "<<" {
		return intval.ShlMode(p.mode, lhs, uint(amount))
	}
	return intval.ShrMode(p.mode, lhs, uint(amount))
}
