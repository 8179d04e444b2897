// Package cards defines the card and deck model shared by every other
// component: canonical encodings, the string boundary format, and the
// full 52-card factory. Nothing in this package is seed-aware; shuffling
// lives in internal/rng.
package cards

import "fmt"

// Rank is a card rank, ordered 2..Ace for iteration and comparison.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a standard deck.
const NumRanks = int(Ace) + 1

// String returns the single-character rank code used in the "RS" boundary format.
func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return string(rune('2' + int(r)))
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

func rankFromByte(b byte) (Rank, error) {
	switch b {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(b - '2'), nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("cards: unknown rank byte %q", b)
	}
}

// Suit is a card suit, ordered S,H,D,C to match the canonical deck
// ordering mandated by the external contract.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of distinct suits in a standard deck.
const NumSuits = int(Clubs) + 1

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

func suitFromByte(b byte) (Suit, error) {
	switch b {
	case 'S', 's':
		return Spades, nil
	case 'H', 'h':
		return Hearts, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'C', 'c':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("cards: unknown suit byte %q", b)
	}
}

// Card is the unordered identity of a single playing card. The zero
// value is the Two of Spades, a real card that FullDeck and Parse("2S")
// both produce, so it cannot serve as a "no card" sentinel.
type Card struct {
	Rank Rank
	Suit Suit
}

// Index returns the compact 0..51 encoding: rank_index*4 + suit_index.
func (c Card) Index() int {
	return int(c.Rank)*NumSuits + int(c.Suit)
}

// FromIndex reconstructs a Card from its compact 0..51 index.
func FromIndex(i int) Card {
	return Card{Rank: Rank(i / NumSuits), Suit: Suit(i % NumSuits)}
}

// String renders the two-character boundary format, e.g. "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Parse decodes a two-character card string such as "AS" or "Td".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("cards: invalid card string %q: want 2 characters", s)
	}
	r, err := rankFromByte(s[0])
	if err != nil {
		return Card{}, err
	}
	su, err := suitFromByte(s[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: r, Suit: su}, nil
}

// MustParse decodes a card string, panicking on error. Intended for
// table-test fixtures where the literal is known good.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll decodes a space-free run of two-character card codes.
func ParseAll(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("cards: odd-length card run %q", s)
	}
	out := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := Parse(s[i : i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
