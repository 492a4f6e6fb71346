package ansi

import (
	"fmt"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/backend/colors"
	"github.com/muesli/termenv"
)

// colorFunc turns parsed arguments into a termenv color.
type colorFunc func(args backend.Args) (termenv.Color, error)

func (b *Backend) registerOperations() {
	pairs := []struct {
		fg, bg string
		kind   backend.ArgKind
		arity  int
		parse  colorFunc
	}{
		{"hex", "bgHex", backend.StringArg, 1, rgbString(colors.NormalizeHex)},
		{"keyword", "bgKeyword", backend.StringArg, 1, rgbString(colors.KeywordHex)},
		{"rgb", "bgRgb", backend.IntTupleArg, 3, rgbTuple(colors.RGB)},
		{"hsl", "bgHsl", backend.IntTupleArg, 3, rgbTuple(colors.HSL)},
		{"hsv", "bgHsv", backend.IntTupleArg, 3, rgbTuple(colors.HSV)},
		{"hwb", "bgHwb", backend.IntTupleArg, 3, rgbTuple(colors.HWB)},
		{"ansi256", "bgAnsi256", backend.IntTupleArg, 1, paletteIndex},
	}

	for _, p := range pairs {
		b.ops.Register(backend.Operation{Name: p.fg, Kind: p.kind, Arity: p.arity, Apply: b.colorOp(p.parse, false)})
		b.ops.Register(backend.Operation{Name: p.bg, Kind: p.kind, Arity: p.arity, Apply: b.colorOp(p.parse, true)})
	}
}

func (b *Backend) colorOp(parse colorFunc, bg bool) backend.ApplyFunc {
	return func(s backend.Style, args backend.Args) (backend.Style, error) {
		st, ok := s.(Style)
		if !ok {
			return nil, fmt.Errorf("style %T does not belong to the %s backend", s, Name)
		}
		c, err := parse(args)
		if err != nil {
			return nil, err
		}
		return st.with(b.profile.Convert(c).Sequence(bg)), nil
	}
}

func rgbString(convert func(string) (string, error)) colorFunc {
	return func(args backend.Args) (termenv.Color, error) {
		hex, err := convert(args.Str)
		if err != nil {
			return nil, err
		}
		return termenv.RGBColor(hex), nil
	}
}

func rgbTuple(convert func(a, b, c int) (string, error)) colorFunc {
	return func(args backend.Args) (termenv.Color, error) {
		hex, err := convert(args.Ints[0], args.Ints[1], args.Ints[2])
		if err != nil {
			return nil, err
		}
		return termenv.RGBColor(hex), nil
	}
}

func paletteIndex(args backend.Args) (termenv.Color, error) {
	n, err := colors.ANSI256(args.Ints[0])
	if err != nil {
		return nil, err
	}
	return termenv.ANSI256Color(n), nil
}
