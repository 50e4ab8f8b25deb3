package syscon

// Block is exclusive access to one peripheral register block.
// Implementations exist for memory-mapped hardware (syscon/mmio) and for
// host-side simulation (syscon/sim).
type Block interface {
	Get(r Reg) uint32
	Set(r Reg, v uint32)
}

// HasBits reports whether every bit in mask is set.
func HasBits(b Block, r Reg, mask uint32) bool { return b.Get(r)&mask == mask }

// SetBits is a read-modify-write setting mask.
func SetBits(b Block, r Reg, mask uint32) { b.Set(r, b.Get(r)|mask) }

// ClearBits is a read-modify-write clearing mask.
func ClearBits(b Block, r Reg, mask uint32) { b.Set(r, b.Get(r)&^mask) }

// ReplaceBits writes value<<pos into the field selected by mask (already
// shifted), leaving the other bits untouched.
func ReplaceBits(b Block, r Reg, value, mask uint32, pos uint8) {
	b.Set(r, (b.Get(r)&^mask)|((value<<pos)&mask))
}

// Field extracts value of the field selected by mask (already shifted).
func Field(v, mask uint32, pos uint8) uint32 { return (v & mask) >> pos }

// LatchMux performs the two-write update handshake for a clock-source
// update enable register: write "no change", then "update".
func LatchMux(b Block, uen Reg) {
	b.Set(uen, UENNoChange)
	b.Set(uen, UENUpdate)
}

// PowerUp clears the given PDRUNCFG bits.
func PowerUp(b Block, mask uint32) { ClearBits(b, PDRUNCFG, mask) }

// PowerDown sets the given PDRUNCFG bits.
func PowerDown(b Block, mask uint32) { SetBits(b, PDRUNCFG, mask) }

// Powered reports whether every block in mask is powered.
func Powered(b Block, mask uint32) bool { return b.Get(PDRUNCFG)&mask == 0 }
