package builder

import (
	"github.com/agenthands/advent/pkg/lexer"
)

// Bucket identifies a field of a record that receives numbers. Zero is
// NoBucket; grammars number their buckets from 1.
type Bucket uint8

// NoBucket means no field is accepting numbers.
const NoBucket Bucket = 0

// Transition moves the router from one bucket to another when the
// separator On is seen.
type Transition struct {
	From Bucket
	On   lexer.Separator
	To   Bucket
}

type route struct {
	from Bucket
	on   lexer.Separator
}

// Router is the "accumulating into" state machine of a record builder:
// numbers go to the active bucket, separators move between buckets
// according to a fixed transition table.
type Router struct {
	g        *lexer.Grammar
	active   Bucket
	table    map[route]Bucket
	buckets  map[Bucket][]int64
	nonEmpty bool
	seen     int // numbers added since the active bucket was entered
}

// NewRouter creates a router starting in bucket start.
func NewRouter(g *lexer.Grammar, start Bucket, ts ...Transition) *Router {
	r := &Router{
		g:       g,
		active:  start,
		table:   make(map[route]Bucket, len(ts)),
		buckets: make(map[Bucket][]int64),
	}
	for _, t := range ts {
		r.table[route{t.From, t.On}] = t.To
	}
	return r
}

// RequireNonEmpty makes leaving a bucket without adding a number to it an
// error.
func (r *Router) RequireNonEmpty() *Router {
	r.nonEmpty = true
	return r
}

// Active returns the bucket currently receiving numbers.
func (r *Router) Active() Bucket {
	return r.active
}

// Select makes b the active bucket regardless of the transition table.
// Keyword-driven grammars use it when the first word of a line names the
// field.
func (r *Router) Select(b Bucket) {
	r.active = b
	r.seen = 0
}

// Add appends a number token to the active bucket.
func (r *Router) Add(tok lexer.Token) error {
	if tok.Kind != lexer.KindNumber {
		return lexer.Errorf(lexer.ErrUnexpectedToken, r.g.Name, tok, "expected a number")
	}
	if r.active == NoBucket {
		return lexer.Errorf(lexer.ErrUnexpectedToken, r.g.Name, tok, "number outside any field")
	}
	r.buckets[r.active] = append(r.buckets[r.active], tok.Value)
	r.seen++
	return nil
}

// Switch follows the transition for separator tok out of the active
// bucket.
func (r *Router) Switch(tok lexer.Token) error {
	if tok.Kind != lexer.KindSeparator {
		return lexer.Errorf(lexer.ErrUnexpectedToken, r.g.Name, tok, "expected a separator")
	}
	to, ok := r.table[route{r.active, tok.Sep}]
	if !ok {
		return lexer.Errorf(lexer.ErrUnexpectedToken, r.g.Name, tok, "%v not allowed here", tok.Sep)
	}
	if r.nonEmpty && r.seen == 0 {
		return lexer.Errorf(lexer.ErrUnexpectedToken, r.g.Name, tok, "%v follows an empty field", tok.Sep)
	}
	r.active = to
	r.seen = 0
	return nil
}

// Route feeds every remaining token of c through the router: numbers are
// added, separators switch buckets, anything else is rejected.
func (r *Router) Route(c *Cursor) error {
	for {
		tok, ok := c.Next()
		if !ok {
			return r.finish(c)
		}
		var err error
		switch tok.Kind {
		case lexer.KindNumber:
			err = r.Add(tok)
		case lexer.KindSeparator:
			err = r.Switch(tok)
		default:
			err = c.Unexpected(tok, "%v inside %s", tok, r.g.Name)
		}
		if err != nil {
			return err
		}
	}
}

func (r *Router) finish(c *Cursor) error {
	if r.nonEmpty && r.seen == 0 {
		return c.Missing("a number")
	}
	return nil
}

// Bucket returns the numbers collected into b in input order.
func (r *Router) Bucket(b Bucket) []int64 {
	return r.buckets[b]
}
