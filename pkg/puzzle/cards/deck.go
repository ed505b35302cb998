package cards

// Deck holds cards together with the number of copies won of each.
type Deck struct {
	cards  []Card
	copies []int64
}

// NewDeck creates a deck with one copy of every card.
func NewDeck(cards []Card) *Deck {
	d := &Deck{cards: cards, copies: make([]int64, len(cards))}
	for i := range d.copies {
		d.copies[i] = 1
	}
	return d
}

// ProcessWins lets every card win copies of the cards following it: a
// card with m matches adds one copy of each of the next m cards per copy
// of itself. Wins past the end of the deck are dropped.
func (d *Deck) ProcessWins() {
	for i, c := range d.cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(d.cards); j++ {
			d.copies[j] += d.copies[i]
		}
	}
}

// Copies returns the number of copies held of the i-th card.
func (d *Deck) Copies(i int) int64 {
	return d.copies[i]
}

// Total is the number of cards in the deck, counting copies.
func (d *Deck) Total() int64 {
	var n int64
	for _, c := range d.copies {
		n += c
	}
	return n
}
