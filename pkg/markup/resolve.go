package markup

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/errors"
)

// Resolve folds a directive chain such as "red.bold" or
// "#FF0000.bg(20,10,255)" into a single style of backend b.
func Resolve(chain string, b backend.Backend) (backend.Style, error) {
	return resolveFrom(chain, b.Base(), b)
}

func resolveFrom(chain string, cur backend.Style, b backend.Backend) (backend.Style, error) {
	for _, marker := range strings.Split(strings.TrimSpace(chain), ".") {
		next, err := resolveMarker(strings.TrimSpace(marker), cur, b)
		if err != nil {
			return nil, err
		}
		cur = next
		if cur == nil {
			return nil, errors.Newf(errors.ErrInvalidStyle, "final style value is not a function after applying %s", chain).
				WithDetail("marker", strings.TrimSpace(marker)).
				WithDetail("chain", chain)
		}
	}
	return cur, nil
}

// Apply resolves chain and renders text with it.
func Apply(chain, text string, b backend.Backend) (string, error) {
	s, err := Resolve(chain, b)
	if err != nil {
		return "", err
	}
	return s.Render(text), nil
}

func resolveMarker(marker string, cur backend.Style, b backend.Backend) (backend.Style, error) {
	if s, ok := b.Basic(cur, marker); ok {
		return s, nil
	}

	if strings.HasPrefix(marker, "#") {
		return call(b, cur, marker, "hex", backend.StringArgs(marker))
	}

	if hex, ok := bgHex(marker); ok {
		return call(b, cur, marker, "bgHex", backend.StringArgs(hex))
	}

	if openIx := strings.Index(marker, "("); openIx >= 0 {
		name, args, err := parseCall(marker, openIx)
		if err != nil {
			return nil, err
		}
		return call(b, cur, marker, name, args)
	}

	return keyword(b, cur, marker)
}

// bgHex recognizes bg#hex, bg-#hex and "bg #hex" and returns the #hex part.
func bgHex(marker string) (string, bool) {
	rest, ok := strings.CutPrefix(marker, "bg")
	if !ok {
		return "", false
	}
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == ' ') {
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, "#") {
		return "", false
	}
	return rest, true
}

// parseCall splits name(args) into the operation name and its arguments.
func parseCall(marker string, openIx int) (string, backend.Args, error) {
	closeIx := strings.LastIndex(marker, ")")
	if closeIx < openIx {
		return "", backend.Args{}, errors.Newf(errors.ErrParse, "marker %s missing matching ()", marker).
			WithDetail("marker", marker)
	}

	name := strings.TrimSpace(marker[:openIx])
	values := strings.TrimSpace(marker[openIx+1 : closeIx])

	if strings.Contains(values, ",") {
		parts := strings.Split(values, ",")
		ints := make([]int, len(parts))
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return "", backend.Args{}, errors.Wrapf(err, errors.ErrParse, "marker %s has invalid integer %q", marker, strings.TrimSpace(part)).
					WithDetail("marker", marker)
			}
			ints[i] = v
		}

		switch name {
		case "":
			name = "rgb"
		case "bg":
			name = "bgRgb"
		}
		return name, backend.IntArgs(ints...), nil
	}

	value, err := deQuote(values, marker)
	if err != nil {
		return "", backend.Args{}, err
	}

	switch name {
	case "":
		name = "keyword"
	case "bg":
		name = "bgKeyword"
	}
	return name, backend.StringArgs(value), nil
}

// deQuote strips enclosing ', " or ` quotes from s.
func deQuote(s, marker string) (string, error) {
	if s == "" {
		return s, nil
	}
	q := s[0]
	if q != '\'' && q != '"' && q != '`' {
		return s, nil
	}
	if len(s) < 2 || s[len(s)-1] != q {
		return "", errors.Newf(errors.ErrParse, "marker %s param must be enclosed with matching quote %c", marker, q).
			WithDetail("marker", marker)
	}
	return s[1 : len(s)-1], nil
}

// call invokes a named backend operation.
func call(b backend.Backend, cur backend.Style, marker, name string, args backend.Args) (backend.Style, error) {
	op, ok := b.Operation(name)
	if !ok {
		return nil, errors.Newf(errors.ErrBackendInvocation, "marker %s is invalid: %s is not a %s function", marker, name, b.Name()).
			WithDetail("marker", marker).
			WithDetail("backend", b.Name())
	}

	// a single integer, as in ansi256(208), parses as a string
	if op.Kind == backend.IntTupleArg && args.Kind == backend.StringArg {
		if v, err := strconv.Atoi(strings.TrimSpace(args.Str)); err == nil {
			args = backend.IntArgs(v)
		}
	}

	s, err := op.Call(cur, args)
	if err != nil {
		return nil, errors.Newf(errors.ErrBackendInvocation, "marker %s is invalid: calling %s.%s failed with: %s", marker, b.Name(), name, err.Error()).
			WithDetail("marker", marker).
			WithDetail("args", args.String()).
			WithDetail("backend", b.Name())
	}
	return s, nil
}

// keyword treats a bare marker as a CSS color keyword. A "bg-" or "bg "
// prefix selects the background.
func keyword(b backend.Backend, cur backend.Style, marker string) (backend.Style, error) {
	kw, err := deQuote(marker, marker)
	if err != nil {
		return nil, err
	}

	name := "keyword"
	if strings.HasPrefix(kw, "bg-") || strings.HasPrefix(kw, "bg ") {
		name, kw = "bgKeyword", kw[3:]
	}

	notFound := func(cause error) error {
		e := errors.Newf(errors.ErrUnknownDirective, "marker %s is not found and invalid as a keyword", marker)
		e.Wrapped = cause
		return e.WithDetail("marker", marker).WithDetail("backend", b.Name())
	}

	op, ok := b.Operation(name)
	if !ok {
		return nil, notFound(nil)
	}
	s, err := op.Call(cur, backend.StringArgs(kw))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}
