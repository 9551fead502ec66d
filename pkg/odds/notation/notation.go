package notation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ib-77/odds/pkg/odds"
	"github.com/ib-77/odds/pkg/odds/explode"
	"github.com/ib-77/odds/pkg/odds/pool"
)

const (
	// MaxDice bounds the number of dice across one expression.
	MaxDice = 100
	// MaxSides bounds the size of a single die.
	MaxSides = 1000
)

var (
	ErrEmptyExpression = errors.New("empty dice expression")
	ErrSyntax          = errors.New("invalid dice expression")
	ErrTooManyDice     = errors.New("too many dice")
	ErrTooManySides    = errors.New("too many sides")
)

// Explosion is the '!' modifier of a dice term.
type Explosion struct {
	Condition explode.Condition
	Threshold int
}

// Term is one signed summand: either a constant or a group of dice.
type Term struct {
	Negative bool
	Dice     bool
	Constant int
	Count    int
	Sides    int
	Explode  *Explosion
	Drop     int
	DropType pool.DropType
}

// Expression is a parsed dice expression.
type Expression struct {
	Raw   string
	Terms []Term
}

// Parse reads a dice expression.
func Parse(raw string) (Expression, error) {
	p := newParser(raw)
	if p.done() {
		return Expression{}, ErrEmptyExpression
	}
	expr := Expression{Raw: raw}

	negative := false
	if !p.accept("+") && p.accept("-") {
		negative = true
	}

	dice := 0
	for {
		term, err := p.term()
		if err != nil {
			return Expression{}, err
		}
		term.Negative = negative
		expr.Terms = append(expr.Terms, term)

		dice += term.Count
		if dice > MaxDice {
			return Expression{}, fmt.Errorf("%w: %d dice, at most %d", ErrTooManyDice, dice, MaxDice)
		}

		if p.done() {
			return expr, nil
		}
		switch {
		case p.accept("+"):
			negative = false
		case p.accept("-"):
			negative = true
		default:
			r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
			return Expression{}, p.errorf("unexpected %q", r)
		}
	}
}

// MustParse is Parse that panics on error. Useful for package-level values.
func MustParse(raw string) Expression {
	e, err := Parse(raw)
	if err != nil {
		panic("notation: MustParse failed for expression " + raw + ": " + err.Error())
	}
	return e
}

// Evaluate parses raw and returns its distribution.
func Evaluate(raw string) (odds.Distribution[int], error) {
	e, err := Parse(raw)
	if err != nil {
		return odds.Distribution[int]{}, err
	}
	return e.Distribution(), nil
}

// Distribution sums the independent terms of e.
func (e Expression) Distribution() odds.Distribution[int] {
	d, _ := e.DistributionContext(context.Background())
	return d
}

// DistributionContext is Distribution that stops with ctx.Err() once ctx
// ends. The context is checked before every die is added, and drop pools
// are folded in parallel with pool.DropContext.
func (e Expression) DistributionContext(ctx context.Context) (odds.Distribution[int], error) {
	out := odds.Empty[int]()
	for _, t := range e.Terms {
		if !t.Dice {
			c := t.Constant
			if t.Negative {
				c = -c
			}
			out = out.AddFlat(c)
			continue
		}

		d, err := t.distribution(ctx)
		if err != nil {
			return odds.Distribution[int]{}, err
		}
		out = out.AddIndependent(d)
	}
	return out, nil
}

// String is the canonical spelling of e.
func (e Expression) String() string {
	var b strings.Builder
	for i, t := range e.Terms {
		switch {
		case t.Negative:
			b.WriteByte('-')
		case i > 0:
			b.WriteByte('+')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Distribution is the term on its own, including its sign.
func (t Term) Distribution() odds.Distribution[int] {
	d, _ := t.distribution(context.Background())
	return d
}

func (t Term) distribution(ctx context.Context) (odds.Distribution[int], error) {
	if err := ctx.Err(); err != nil {
		return odds.Distribution[int]{}, err
	}

	var d odds.Distribution[int]
	if !t.Dice {
		d = odds.Empty[int]().AddFlat(t.Constant)
	} else {
		die := odds.New(t.Sides)
		if t.Explode != nil {
			die = explode.Apply(die, t.Explode.Threshold, t.Explode.Condition, odds.New(t.Sides))
		}
		if t.Drop > 0 {
			var err error
			if d, err = pool.DropContext(ctx, pool.Repeat(die, t.Count), t.Drop, t.DropType); err != nil {
				return odds.Distribution[int]{}, err
			}
		} else {
			d = odds.Empty[int]()
			for range t.Count {
				if err := ctx.Err(); err != nil {
					return odds.Distribution[int]{}, err
				}
				d = d.AddIndependent(die)
			}
		}
	}

	if t.Negative {
		return negate(d), nil
	}
	return d, nil
}

// String spells the term without its sign.
func (t Term) String() string {
	if !t.Dice {
		return strconv.Itoa(t.Constant)
	}

	s := fmt.Sprintf("%dd%d", t.Count, t.Sides)
	if t.Explode != nil {
		s += "!" + t.Explode.Condition.String() + strconv.Itoa(t.Explode.Threshold)
	}
	if t.Drop > 0 {
		if t.DropType == pool.DropLow {
			s += "dl" + strconv.Itoa(t.Drop)
		} else {
			s += "dh" + strconv.Itoa(t.Drop)
		}
	}
	return s
}

func negate(d odds.Distribution[int]) odds.Distribution[int] {
	entries := d.Probabilities()
	for i := range entries {
		entries[i].Value = -entries[i].Value
	}
	return odds.FromProbabilities(entries)
}

// parser reads the input with whitespace removed and letters lowercased.
// offsets maps every byte of src, and its end, back to the raw input, so
// error positions are byte offsets into what the caller wrote.
type parser struct {
	src     string
	offsets []int
	pos     int
}

func newParser(raw string) *parser {
	var b strings.Builder
	offsets := make([]int, 0, len(raw)+1)
	for i, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		n := b.Len()
		b.WriteRune(unicode.ToLower(r))
		for range b.Len() - n {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(raw))
	return &parser{src: b.String(), offsets: offsets}
}

func (p *parser) done() bool {
	return p.pos >= len(p.src)
}

func (p *parser) accept(token string) bool {
	if strings.HasPrefix(p.src[p.pos:], token) {
		p.pos += len(token)
		return true
	}
	return false
}

func (p *parser) number() (int, bool, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, false, nil
	}

	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, false, fmt.Errorf("%w: number %q at position %d", ErrSyntax, p.src[start:p.pos], p.offsets[start])
	}
	return n, true, nil
}

func (p *parser) requireNumber(what string) (int, error) {
	n, ok, err := p.number()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, p.errorf("expected %s", what)
	}
	return n, nil
}

func (p *parser) term() (Term, error) {
	count, hasCount, err := p.number()
	if err != nil {
		return Term{}, err
	}

	if !p.accept("d") {
		if !hasCount {
			return Term{}, p.errorf("expected number or die")
		}
		return Term{Constant: count}, nil
	}
	if !hasCount {
		count = 1
	}

	sides, err := p.requireNumber("die sides")
	if err != nil {
		return Term{}, err
	}
	if sides > MaxSides {
		return Term{}, fmt.Errorf("%w: d%d, at most %d", ErrTooManySides, sides, MaxSides)
	}
	if count > MaxDice {
		return Term{}, fmt.Errorf("%w: %d dice, at most %d", ErrTooManyDice, count, MaxDice)
	}

	t := Term{Dice: true, Count: count, Sides: sides}

	if p.accept("!") {
		t.Explode = &Explosion{Condition: explode.Equal, Threshold: sides}
		if c, ok := p.condition(); ok {
			threshold, err := p.requireNumber("explode threshold")
			if err != nil {
				return Term{}, err
			}
			t.Explode = &Explosion{Condition: c, Threshold: threshold}
		}
	}

	switch {
	case p.accept("dl"):
		t.DropType = pool.DropLow
		t.Drop, err = p.requireNumber("drop amount")
	case p.accept("dh"):
		t.DropType = pool.DropHigh
		t.Drop, err = p.requireNumber("drop amount")
	case p.accept("kh"):
		t.DropType = pool.DropLow
		t.Drop, err = p.keep(count)
	case p.accept("kl"):
		t.DropType = pool.DropHigh
		t.Drop, err = p.keep(count)
	}
	if err != nil {
		return Term{}, err
	}
	return t, nil
}

func (p *parser) keep(count int) (int, error) {
	n, err := p.requireNumber("keep amount")
	if err != nil {
		return 0, err
	}
	return max(count-n, 0), nil
}

func (p *parser) condition() (explode.Condition, bool) {
	for _, symbol := range []string{"<=", ">=", "==", "<", ">", "="} {
		if p.accept(symbol) {
			c, err := explode.ParseCondition(symbol)
			return c, err == nil
		}
	}
	return 0, false
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at position %d", ErrSyntax, fmt.Sprintf(format, args...), p.offsets[p.pos])
}
