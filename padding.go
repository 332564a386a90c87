package buffer

// LineSize is the assumed CPU cache line width in bytes, used by the
// cache-aligned policy. It is not auto-detected: 64 matches current x86-64
// and most arm64 parts, but is wrong for some targets (e.g. Apple M-series
// performance cores use 128-byte lines).
//
// TODO: detect the line size at init on platforms that expose it.
const LineSize = 64

type padMode uint8

const (
	padNone padMode = iota
	padMin
	padLine
)

// Padding is the policy that resolves an element's natural size to the
// per-slot stride. The zero value is the none policy.
type Padding struct {
	mode padMode
	min  int
}

// PadNone leaves slots at their element's natural size.
func PadNone() Padding {
	return Padding{mode: padNone}
}

// PadTo enforces a minimum stride. The resolved stride is never below the
// element size or 1, whichever is larger.
func PadTo(min int) Padding {
	return Padding{mode: padMin, min: min}
}

// PadCacheAligned rounds the stride up to a multiple of LineSize so that
// consecutive slots never share a cache line.
func PadCacheAligned() Padding {
	return Padding{mode: padLine}
}

// Resolve returns the per-slot stride for an element of the given natural
// size. It is pure and total: any size and policy yields a defined stride.
// Note that the none policy maps a zero-size element to stride 0, which the
// size guard later rejects.
func (p Padding) Resolve(elementSize int) int {
	switch p.mode {
	case padMin:
		stride := p.min
		if stride < elementSize { // must hold the thing being contained
			stride = elementSize
		}
		if stride < 1 {
			stride = 1
		}
		return stride
	case padLine:
		if elementSize > 0 && elementSize%LineSize == 0 { // naturally aligned
			return elementSize
		}
		return (elementSize/LineSize + 1) * LineSize
	default:
		return elementSize
	}
}
