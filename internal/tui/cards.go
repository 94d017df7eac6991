package tui

import (
	"strings"

	"github.com/ashxudev/terminal-poker/poker"
)

var suitSymbols = [4]string{"♣", "♦", "♥", "♠"}

// cardGlyph renders a single card as [A♠], red for hearts and diamonds.
func cardGlyph(c poker.Card) string {
	rank := c.Rank()
	suit := c.Suit()
	if rank > 12 || suit > 3 {
		return EmptySlotStyle.Render("[??]")
	}
	text := "[" + string("23456789TJQKA"[rank]) + suitSymbols[suit] + "]"
	if suit == poker.Hearts || suit == poker.Diamonds {
		return RedCardStyle.Render(text)
	}
	return BlackCardStyle.Render(text)
}

func cardGlyphs(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardGlyph(c)
	}
	return strings.Join(parts, " ")
}

func faceDownGlyphs(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = CardBackStyle.Render("[▒▒]")
	}
	return strings.Join(parts, " ")
}

// boardGlyphs shows the dealt board followed by empty slots up to the river.
func boardGlyphs(board []poker.Card) string {
	parts := make([]string, 0, 5)
	for _, c := range board {
		parts = append(parts, cardGlyph(c))
	}
	for i := len(board); i < 5; i++ {
		parts = append(parts, EmptySlotStyle.Render("[··]"))
	}
	return strings.Join(parts, " ")
}
