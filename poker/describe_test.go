package poker

import (
	"math"
	"testing"
)

func classify(t *testing.T, s string) HandClass {
	t.Helper()
	if s == "" {
		return ClassifyHand(0)
	}
	return ClassifyHand(mustHand(t, s))
}

func TestClassifyDescriptions(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected string
	}{
		{"empty", "", "No cards"},
		{"king high preflop", "Kc 7d", "kings high"},
		{"pocket aces", "Ac Ad", "Pair of aces"},
		{"ace high board", "Ac Kd 9h 7s 5c", "aces high"},
		{"pair of queens", "Qc Qd 9h 7s 5c", "Pair of queens"},
		{"two pair", "Ac Ad Kc Kd 9h", "Two pair, aces and kings"},
		{"three of a kind", "7c 7d 7h Ac Kd", "Three of a kind, sevens"},
		{"nine high straight", "9c 8d 7h 6s 5c", "nines high straight"},
		{"wheel", "Ac 2d 3h 4s 5c", "fives high straight"},
		{"queen high flush", "Qh 9h 7h 4h 2h", "queens high flush"},
		{"full house", "Ac Ad Ah Kc Kd", "Full house, aces full of kings"},
		{"four of a kind", "8c 8d 8h 8s Kc", "Four of a kind, eights"},
		{"steel wheel", "Ah 2h 3h 4h 5h", "fives high straight flush"},
		{"royal flush", "As Ks Qs Js Ts", "aces high straight flush"},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			got := classify(t, tc.cards).Describe()
			if got != tc.expected {
				t.Errorf("Describe(%s) = %q, want %q", tc.cards, got, tc.expected)
			}
		})
	}
}

func TestClassifySevenCards(t *testing.T) {
	// With seven cards the class must match the evaluator's category.
	tests := []struct {
		cards    string
		expected HandType
	}{
		{"As Ks Qs Js Ts 2c 3d", StraightFlush},
		{"Ac Ad Ah As Kc 2d 3h", FourOfAKind},
		{"Kc Kd Kh 2s 2c 7d 9h", FullHouse},
		{"Ah 9h 7h 4h 2h Kc Qd", Flush},
		{"9c 8d 7h 6s 5c Ad Kh", Straight},
		{"7c 7d 7h Ac Kd 4s 2h", ThreeOfAKind},
		{"Ac Ad Kc Kd 9h 5s 2c", TwoPair},
		{"Ac Ad Th 9s 7c 5d 3h", Pair},
		{"Ac Kd 9h 7s 5c 3d 2h", HighCard},
	}

	for _, tc := range tests {
		hand := mustHand(t, tc.cards)
		class := ClassifyHand(hand)
		if class.Type != tc.expected {
			t.Errorf("ClassifyHand(%s).Type = %s, want %s", tc.cards, class.Type, tc.expected)
		}
		if evalType := Evaluate7Cards(hand).Type(); class.Type != evalType {
			t.Errorf("ClassifyHand(%s) disagrees with evaluator: %s vs %s",
				tc.cards, class.Type, evalType)
		}
	}
}

func TestClassifyFullHouseFromTwoTrips(t *testing.T) {
	class := classify(t, "Ac Ad Ah Kc Kd Kh Qs")
	if class.Type != FullHouse {
		t.Fatalf("Two trips should make a full house, got %s", class.Type)
	}
	if class.Describe() != "Full house, aces full of kings" {
		t.Errorf("Expected aces full of kings, got %q", class.Describe())
	}
}

func TestStrength(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected float64
	}{
		{"king high", "Kc 7d", 0.0917},
		{"pair of kings", "Kc Kd 9h 7s 5c", 0.2167},
		{"pair of aces", "Ac Ad 9h 7s 5c", 0.2250},
		{"three kings", "Kc Kd Kh 9s 5c", 0.4667},
		{"royal flush capped", "As Ks Qs Js Ts", 1.0},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			got := classify(t, tc.cards).Strength()
			if math.Abs(got-tc.expected) > 0.001 {
				t.Errorf("Strength(%s) = %.4f, want %.4f", tc.cards, got, tc.expected)
			}
		})
	}
}

func TestStrengthOrdering(t *testing.T) {
	weakPair := classify(t, "2c 2d 9h 7s 5c").Strength()
	strongPair := classify(t, "Ac Ad 9h 7s 5c").Strength()
	twoPair := classify(t, "2c 2d 3h 3s 5c").Strength()

	if !(weakPair < strongPair) {
		t.Errorf("Pair of aces (%.3f) should beat pair of twos (%.3f)", strongPair, weakPair)
	}
	if !(strongPair < twoPair) {
		t.Errorf("Any two pair (%.3f) should beat pair of aces (%.3f)", twoPair, strongPair)
	}
}

func TestStrengthNoCards(t *testing.T) {
	if got := ClassifyHand(0).Strength(); got != 0.0 {
		t.Errorf("Empty hand strength = %.3f, want 0", got)
	}
}
