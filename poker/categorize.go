package poker

// PreflopTier buckets a two-card starting hand for heads-up play,
// ordered weakest to strongest.
type PreflopTier int

const (
	Trash PreflopTier = iota
	Marginal
	Playable
	Strong
	Premium
)

func (t PreflopTier) String() string {
	switch t {
	case Premium:
		return "Premium"
	case Strong:
		return "Strong"
	case Playable:
		return "Playable"
	case Marginal:
		return "Marginal"
	default:
		return "Trash"
	}
}

// Pair tiers indexed by rank (0=22 through 12=AA).
var pairTiers = [13]PreflopTier{
	Marginal, Marginal, Marginal, Marginal,
	Playable, Playable, Playable, Playable,
	Strong, Strong,
	Premium, Premium, Premium,
}

var suitedTiers, offsuitTiers = preflopMatrices()

// preflopMatrices builds the suited and offsuit lookup tables. Suited hands
// index as [low][high], offsuit as [high][low]; cells on the wrong side of the
// diagonal are never consulted.
func preflopMatrices() (suited, offsuit [13][13]PreflopTier) {
	const (
		x = Trash // unused cell
		t = Trash
		m = Marginal
		l = Playable
		s = Strong
		p = Premium
	)

	suited = [13][13]PreflopTier{
		//  2  3  4  5  6  7  8  9  T  J  Q  K  A
		{x, t, t, t, t, t, t, t, t, t, t, m, l}, // low=2
		{x, x, m, t, t, t, t, t, t, t, t, m, l}, // low=3
		{x, x, x, m, m, t, t, t, t, t, t, m, l}, // low=4
		{x, x, x, x, m, m, m, t, t, t, t, m, l}, // low=5
		{x, x, x, x, x, m, l, m, t, t, t, m, l}, // low=6
		{x, x, x, x, x, x, l, l, m, t, t, m, l}, // low=7
		{x, x, x, x, x, x, x, l, l, m, m, m, l}, // low=8
		{x, x, x, x, x, x, x, x, l, l, m, l, l}, // low=9
		{x, x, x, x, x, x, x, x, x, l, l, l, s}, // low=T
		{x, x, x, x, x, x, x, x, x, x, l, s, s}, // low=J
		{x, x, x, x, x, x, x, x, x, x, x, s, s}, // low=Q
		{x, x, x, x, x, x, x, x, x, x, x, x, p}, // low=K
		{x, x, x, x, x, x, x, x, x, x, x, x, x}, // low=A
	}

	offsuit = [13][13]PreflopTier{
		//  2  3  4  5  6  7  8  9  T  J  Q  K  A
		{x, x, x, x, x, x, x, x, x, x, x, x, x}, // high=2
		{t, x, x, x, x, x, x, x, x, x, x, x, x}, // high=3
		{t, m, x, x, x, x, x, x, x, x, x, x, x}, // high=4
		{t, t, m, x, x, x, x, x, x, x, x, x, x}, // high=5
		{t, t, t, m, x, x, x, x, x, x, x, x, x}, // high=6
		{t, t, t, t, m, x, x, x, x, x, x, x, x}, // high=7
		{t, t, t, t, t, m, x, x, x, x, x, x, x}, // high=8
		{t, t, t, t, t, t, m, x, x, x, x, x, x}, // high=9
		{t, t, t, t, t, t, t, m, x, x, x, x, x}, // high=T
		{t, t, t, t, t, t, t, t, m, x, x, x, x}, // high=J
		{t, t, t, t, t, t, t, t, m, m, x, x, x}, // high=Q
		{t, t, t, t, t, t, t, t, m, m, l, x, x}, // high=K
		{t, t, t, m, m, m, m, m, l, l, s, p, x}, // high=A
	}

	return suited, offsuit
}

// CategorizeHoleCards classifies a two-card starting hand into its preflop
// tier. Invalid cards categorize as Trash.
func CategorizeHoleCards(card1, card2 Card) PreflopTier {
	r1 := card1.Rank()
	r2 := card2.Rank()
	if r1 > 12 || r2 > 12 {
		return Trash
	}

	if r1 == r2 {
		return pairTiers[r1]
	}

	high, low := r1, r2
	if low > high {
		high, low = low, high
	}

	if card1.Suit() == card2.Suit() {
		return suitedTiers[low][high]
	}
	return offsuitTiers[high][low]
}
