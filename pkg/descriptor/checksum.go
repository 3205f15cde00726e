package descriptor

import "strings"

const (
	// inputCharset is the set of characters allowed in the descriptor body,
	// grouped so that similar characters share the low 5 bits fed to the
	// checksum while the group index is mixed in separately.
	inputCharset = "0123456789()[],'/*abcdefgh@:$%{}" +
		"IJKLMNOPQRSTUVWXYZ&+-.;<=>?!^_|~" +
		"ijklmnopqrstuvwxyzABCDEFGH`#\"\\ "

	// checksumCharset is the bech32 character set used to encode the
	// resulting 40-bit checksum.
	checksumCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

func polyMod(c uint64, val uint64) uint64 {
	c0 := c >> 35
	c = ((c & 0x7ffffffff) << 5) ^ val
	if c0&1 != 0 {
		c ^= 0xf5dee51989
	}
	if c0&2 != 0 {
		c ^= 0xa9fdca3312
	}
	if c0&4 != 0 {
		c ^= 0x1bab10e32d
	}
	if c0&8 != 0 {
		c ^= 0x3706b1677a
	}
	if c0&16 != 0 {
		c ^= 0x644d626ffd
	}
	return c
}

// Checksum computes the 8-character checksum of a descriptor body, not
// including any existing "#" suffix. It returns an empty string if the
// descriptor contains characters outside the allowed charset.
func Checksum(desc string) string {
	c := uint64(1)
	cls := uint64(0)
	clsCount := 0
	for _, ch := range desc {
		pos := strings.IndexRune(inputCharset, ch)
		if pos < 0 {
			return ""
		}
		c = polyMod(c, uint64(pos)&31)
		cls = cls*3 + uint64(pos)>>5
		clsCount++
		if clsCount == 3 {
			c = polyMod(c, cls)
			cls = 0
			clsCount = 0
		}
	}
	if clsCount > 0 {
		c = polyMod(c, cls)
	}
	for i := 0; i < 8; i++ {
		c = polyMod(c, 0)
	}
	c ^= 1

	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteByte(checksumCharset[(c>>(5*uint(7-i)))&31])
	}
	return sb.String()
}

// AddChecksum returns the descriptor suffixed with "#" and its checksum.
// A descriptor that already carries a checksum suffix is stripped and
// re-suffixed with a freshly computed one.
func AddChecksum(desc string) string {
	if i := strings.LastIndex(desc, "#"); i >= 0 {
		desc = desc[:i]
	}
	return desc + "#" + Checksum(desc)
}

// Check reports whether the descriptor carries a valid checksum suffix.
func Check(desc string) bool {
	i := strings.LastIndex(desc, "#")
	if i < 0 || len(desc)-i-1 != 8 {
		return false
	}
	return Checksum(desc[:i]) == desc[i+1:]
}
