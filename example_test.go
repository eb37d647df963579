package anoto

import "fmt"

// Example demonstrates encoding a page section and recovering its position
// and section identifier from an arbitrary window of the result.
func Example() {
	codec, err := NewDefault()
	if err != nil {
		panic(err)
	}

	page := codec.EncodeBitMatrix(64, 64, 12, 7)
	window := NewWindow(codec, cropWindow(page, 30, 18, codec.MNSOrder(), codec.MNSOrder()))

	x, y, err := window.Position()
	if err != nil {
		panic(err)
	}
	u, v, err := window.Section()
	if err != nil {
		panic(err)
	}
	fmt.Printf("position=(%d,%d) section=(%d,%d)\n", x, y, u, v)

	// Output:
	// position=(30,18) section=(12,7)
}

// Example_rotation demonstrates recovering a window's rotation after it has
// been scanned in an unknown orientation.
func Example_rotation() {
	codec, err := NewDefault()
	if err != nil {
		panic(err)
	}

	page := codec.EncodeBitMatrix(64, 64, 0, 0)
	window := cropWindow(page, 10, 10, codec.MNSOrder(), codec.MNSOrder())
	scanned := rot90(window, 3)

	rot, err := NewWindow(codec, scanned).Rotation()
	if err != nil {
		panic(err)
	}
	fmt.Println("rotation:", rot)

	// Output:
	// rotation: 3
}
