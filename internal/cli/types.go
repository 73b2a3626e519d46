package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-radix"
)

// intType performs the work of each subcommand for one integer type. The
// commands pick an implementation from intTypes by the --type name.
type intType interface {
	convert(s string, from, to int, st radix.Style) (string, error)
	bits(w io.Writer, s string, from int) error
	inspect(w io.Writer, s string, from int, dump bool) error
}

var intTypes = map[string]intType{
	"i8":   typeOps[int8]{},
	"i16":  typeOps[int16]{},
	"i32":  typeOps[int32]{},
	"i64":  typeOps[int64]{},
	"int":  typeOps[int]{},
	"u8":   typeOps[uint8]{},
	"u16":  typeOps[uint16]{},
	"u32":  typeOps[uint32]{},
	"u64":  typeOps[uint64]{},
	"uint": typeOps[uint]{},
}

func lookupType(name string) (intType, error) {
	t, ok := intTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return t, nil
}

type typeOps[T radix.Integer] struct{}

func (typeOps[T]) convert(s string, from, to int, st radix.Style) (string, error) {
	r, err := radix.Parse[T](s, from)
	if err != nil {
		return "", err
	}
	if r, err = r.WithBase(to); err != nil {
		return "", err
	}
	return r.Styled(st), nil
}

func (typeOps[T]) bits(w io.Writer, s string, from int) error {
	r, err := radix.Parse[T](s, from)
	if err != nil {
		return err
	}

	bs, err := radix.FromBytes(r.Bytes(), 16)
	if err != nil {
		return err
	}

	nibbles := make([]radix.Radix[T], r.Nibbles())
	for i := range nibbles {
		nibbles[i] = r.NibbleRadix(len(nibbles) - 1 - i)
		if nibbles[i], err = nibbles[i].WithBase(16); err != nil {
			return err
		}
	}

	var bitStr strings.Builder
	for i := r.BitLen() - 1; i >= 0; i-- {
		bitStr.WriteByte('0' + byte(r.Bit(i)))
		if i > 0 && i%8 == 0 {
			bitStr.WriteByte(' ')
		}
	}

	fmt.Fprintf(w, "value    %s\n", r.Text(true, true))
	fmt.Fprintf(w, "width    %d bits\n", r.BitLen())
	fmt.Fprintf(w, "bytes    %s\n", radix.Join(bs, " ", radix.Style{PadTo: 2}))
	fmt.Fprintf(w, "nibbles  %s\n", radix.Join(nibbles, " ", radix.Style{}))
	fmt.Fprintf(w, "bits     %s\n", bitStr.String())
	return nil
}

var inspectBases = []struct {
	name string
	base int
}{
	{"binary", 2},
	{"octal", 8},
	{"decimal", 10},
	{"hex", 16},
}

func (typeOps[T]) inspect(w io.Writer, s string, from int, dump bool) error {
	r, err := radix.Parse[T](s, from)
	if err != nil {
		return err
	}

	for _, b := range inspectBases {
		rb, err := r.WithBase(b.base)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-8s %#s\n", b.name, rb)
	}
	fmt.Fprintf(w, "%-8s %#v\n", "go", r)

	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}
		cfg.Fdump(w, r)
	}
	return nil
}
