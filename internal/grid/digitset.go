package grid

import "math/bits"

// DigitSet is a bitset of candidate digits 1..9 (bit d set = digit d possible).
type DigitSet uint16

// All has every digit 1..9 set.
const All DigitSet = 0x3FE

// Only returns the set containing just d.
func Only(d uint8) DigitSet { return 1 << d }

func (s DigitSet) Has(d uint8) bool { return s&(1<<d) != 0 }

func (s DigitSet) Without(d uint8) DigitSet { return s &^ (1 << d) }

func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single remaining digit. Only meaningful when Count() == 1.
func (s DigitSet) Sole() uint8 { return uint8(bits.TrailingZeros16(uint16(s))) }
