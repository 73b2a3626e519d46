package radix_test

import (
	"fmt"

	"github.com/shabbyrobe/go-radix"
)

func Example() {
	r := radix.Hex(uint16(0x1234))
	r.SetNibble(3, 0xF)
	fmt.Println(r)
	fmt.Println(r.PadTo(8, 4, true, true))
	// Output:
	// F234
	// 0x0000_F234
}

func ExampleParse() {
	r, err := radix.Parse[int8]("-0x80", 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Value(), r.Text(true, true))

	_, err = radix.Parse[uint8]("0o400", 8)
	fmt.Println(err)
	// Output:
	// -128 -0x80
	// radix: Parse: parsing "0o400" as base-8 uint8: value out of range
}

func ExampleRadix_PadToEvery() {
	fmt.Println(radix.Binary(31).PadToEvery(4, 4, true, true))
	fmt.Println(radix.Octal(0o123456).PadToEvery(2, 2, false, true))
	// Output:
	// 0b0001_1111
	// 12 34 56
}

func ExampleRadix_Format() {
	h := radix.Hex(uint8(0xAB))
	fmt.Printf("%s %#s %#v %d %08b\n", h, h, h, h, h)
	// Output:
	// AB 0xAB radix.Radix[uint8](0xAB) 171 10101011
}

func ExampleLiteral() {
	rs, _ := radix.FromBytes([]byte("Go"), 16)
	fmt.Println(radix.Literal(rs, radix.Style{PadTo: 2}))
	// Output:
	// []uint8{0x47, 0x6F}
}
