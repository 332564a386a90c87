package buffer_test

import (
	"fmt"

	"github.com/omnivers3/buffer"
)

func Example() {
	buf, err := buffer.New[uint8](2)
	if err != nil {
		panic(err)
	}
	defer buf.Close()

	*buf.Entries()[1] = 12
	fmt.Println(buf.Bytes())
	// Output: [0 12]
}

func ExampleNewPadded() {
	type pair struct {
		A, B uint64
	}

	buf, err := buffer.NewPadded[pair](2, 18)
	if err != nil {
		panic(err)
	}
	defer buf.Close()

	fmt.Println(buf.ElementSize(), buf.Stride(), buf.TotalSize())
	// Output: 16 18 36
}

func ExampleNewCacheAligned() {
	type counter struct {
		Value uint64
	}

	// One slot per worker, each on its own cache line.
	buf, err := buffer.NewCacheAligned[counter](4)
	if err != nil {
		panic(err)
	}
	defer buf.Close()

	for i, c := range buf.Entries() {
		c.Value = uint64(i * 10)
	}

	total := uint64(0)
	for _, c := range buf.Entries() {
		total += c.Value
	}
	fmt.Println(buf.Stride(), total)
	// Output: 64 60
}

func ExampleBuffer_SlotBytes() {
	buf, err := buffer.NewPadded[uint32](2, 8)
	if err != nil {
		panic(err)
	}
	defer buf.Close()

	// Slot views are truncated to the element's natural size; the padding
	// bytes only appear in the full view.
	fmt.Println(len(buf.SlotBytes()[0]), len(buf.Bytes()))
	// Output: 4 16
}
