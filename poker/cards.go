// Package poker provides the core card model, deck handling and hand
// evaluation used by the game engine, the bot and the equity calculator.
//
// Cards are represented as single bits in a uint64 so that hands can be
// combined with bitwise OR and evaluated with mask arithmetic.
package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs]
type Card uint64

// Hand is also a uint64 but can contain multiple cards.
// Multiple cards are represented by multiple bits set.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// RankMask covers the 13 rank bits of a single suit.
const RankMask = 0x1FFF

// NewCard creates a card from rank and suit
func NewCard(rank, suit uint8) Card {
	offset := suit*13 + rank
	return Card(1) << offset
}

// GetBitPosition returns which bit position this card occupies (0-51)
func (c Card) GetBitPosition() uint8 {
	if c == 0 {
		return 255 // Invalid card
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	pos := c.GetBitPosition()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	pos := c.GetBitPosition()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	ranks := "23456789TJQKA"
	suits := "cdhs"

	rank := c.Rank()
	suit := c.Suit()

	if rank > 12 || suit > 3 {
		return "??"
	}

	return string(ranks[rank]) + string(suits[suit])
}

// ParseCard parses a string like "As" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %s", s)
	}

	var rank uint8
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}

	var suit uint8
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards like "AsKh" or "As Kh 2d" into a slice.
// Separators (spaces and commas) are optional.
func ParseCards(s string) ([]Card, error) {
	cleaned := strings.NewReplacer(" ", "", ",", "").Replace(s)
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("invalid card list: %s", s)
	}

	cards := make([]Card, 0, len(cleaned)/2)
	seen := Hand(0)
	for i := 0; i < len(cleaned); i += 2 {
		card, err := ParseCard(cleaned[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen.HasCard(card) {
			return nil, fmt.Errorf("duplicate card: %s", card)
		}
		seen.AddCard(card)
		cards = append(cards, card)
	}
	return cards, nil
}

// RankName returns the plural rank name used in hand descriptions ("aces").
func RankName(rank uint8) string {
	names := [...]string{
		"twos", "threes", "fours", "fives", "sixes", "sevens", "eights",
		"nines", "tens", "jacks", "queens", "kings", "aces",
	}
	if rank > 12 {
		return "unknown"
	}
	return names[rank]
}

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// Cards returns the individual cards in the hand, lowest bit first.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	rest := uint64(h)
	for rest != 0 {
		low := rest & -rest
		cards = append(cards, Card(low))
		rest &^= low
	}
	return cards
}

// String returns the cards in the hand separated by spaces.
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// GetSuitMask returns the cards of a specific suit as a bitmask
func (h Hand) GetSuitMask(suit uint8) uint16 {
	offset := suit * 13
	return uint16((h >> offset) & RankMask)
}

// GetRankMask returns a bitmask of the ranks present across all suits.
func (h Hand) GetRankMask() uint16 {
	mask := uint16(0)
	for suit := uint8(0); suit < 4; suit++ {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}
