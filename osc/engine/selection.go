package engine

// Bank identifies a group of oscillator shapes.
type Bank int

// The three shape banks, in cycle order.
const (
	BankFunc Bank = iota
	BankMesh
	BankWT

	bankCount
)

// String returns the bank's panel name.
func (b Bank) String() string {
	switch b {
	case BankFunc:
		return "FUNC"
	case BankMesh:
		return "MESH"
	case BankWT:
		return "WT"
	}
	return "?"
}

// selection tracks the active (bank, index) pair. Indices are kept in range
// by construction; resolving the active oscillator can never fail.
type selection struct {
	bank  Bank
	index int
	sizes [bankCount]int
}

// cycle advances the index, flowing into the next bank (cyclically) when
// the current bank is exhausted.
func (s *selection) cycle() {
	s.index++
	if s.index >= s.sizes[s.bank] {
		s.index = 0
		s.bank = (s.bank + 1) % bankCount
	}
}

// advanceBank moves to the next bank without touching the index beyond
// keeping it valid for the new bank.
func (s *selection) advanceBank() {
	s.bank = (s.bank + 1) % bankCount
	if s.index >= s.sizes[s.bank] {
		s.index = s.sizes[s.bank] - 1
	}
}

// advanceIndex steps the index within the current bank.
func (s *selection) advanceIndex() {
	s.index = (s.index + 1) % s.sizes[s.bank]
}
