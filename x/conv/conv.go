// Package conv formats integers into caller-supplied buffers.
// No allocations; no fmt/strconv dependency.
package conv

// Utoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	} else {
		for n > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (n % 10))
			n /= 10
		}
	}
	return buf[i:]
}

// U32Hex writes 8-digit uppercase hex without 0x, zero-padded.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	const hexd = "0123456789ABCDEF"
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Fixed writes n/10^places with exactly places fractional digits, e.g.
// Fixed(buf, 1050, 3) == "1.050". buf should be length >= 22.
func Fixed(buf []byte, n uint64, places int) []byte {
	if places <= 0 {
		return Utoa(buf, n)
	}
	if len(buf) < places+2 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < places; j++ {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	i--
	buf[i] = '.'
	head := Utoa(buf[:i], n)
	return buf[i-len(head):]
}
