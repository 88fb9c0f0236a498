package domain

import (
	"math/big"
	"strings"
)

// CapAdministrator is the capability bit that unlocks the static menu control.
const CapAdministrator int64 = 8

// Capabilities is the invoker's capability bitmask.
// Hosts deliver it as a decimal string that may exceed 64 bits.
type Capabilities struct {
	mask *big.Int
}

// ParseCapabilities parses a decimal bitmask. Empty or malformed input grants nothing.
func ParseCapabilities(raw string) Capabilities {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Capabilities{}
	}
	mask, ok := new(big.Int).SetString(raw, 10)
	if !ok || mask.Sign() < 0 {
		return Capabilities{}
	}
	return Capabilities{mask: mask}
}

// Has reports whether every bit of flag is set.
func (c Capabilities) Has(flag int64) bool {
	if c.mask == nil || flag <= 0 {
		return false
	}
	f := big.NewInt(flag)
	return new(big.Int).And(c.mask, f).Cmp(f) == 0
}

// String returns the decimal form of the mask ("0" when empty).
func (c Capabilities) String() string {
	if c.mask == nil {
		return "0"
	}
	return c.mask.String()
}
