package poker

import (
	rand "math/rand/v2"
)

// Deck is a standard 52 card deck dealt from a shuffled order. The zero
// value is not usable; construct with NewDeck.
type Deck struct {
	cards [52]Card
	drawn int
	rng   *rand.Rand
}

// NewDeck returns a freshly shuffled deck drawing from rng. The caller owns
// the source, so two decks built from equally seeded sources deal identical
// sequences.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range d.cards {
		d.cards[i] = Card(1) << i
	}
	d.Shuffle()
	return d
}

// Shuffle returns every dealt card to the deck and reorders it.
func (d *Deck) Shuffle() {
	d.drawn = 0
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes the next n cards. It returns nil if fewer than n remain; a
// partial deal would corrupt a hand in progress.
func (d *Deck) Deal(n int) []Card {
	if n > len(d.cards)-d.drawn {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.drawn:])
	d.drawn += n
	return cards
}

// DealOne removes the next card, or returns 0 on an exhausted deck.
func (d *Deck) DealOne() Card {
	if d.drawn == len(d.cards) {
		return 0
	}
	c := d.cards[d.drawn]
	d.drawn++
	return c
}

// Reset reshuffles the full 52 cards for the next hand.
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining reports how many cards are left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.drawn
}
