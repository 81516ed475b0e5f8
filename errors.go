package figure

import "github.com/pkg/errors"

// Errors returned by constructors and decoders. Returned errors wrap one
// of these with context and can be matched with errors.Is.
var (
	// ErrArity is returned when a vertex list length does not match the
	// figure's fixed vertex count.
	ErrArity = errors.New("wrong number of vertices")
	// ErrUnknownKind is returned for figure kind names other than
	// triangle, hexagon and octagon.
	ErrUnknownKind = errors.New("unknown figure kind")

	ErrEmptyInput    = errors.New("empty input")
	ErrUnknownMode   = errors.New("unknown mode keyword")
	ErrTooFewTokens  = errors.New("too few values")
	ErrTooManyTokens = errors.New("too many values")
	ErrNotNumber     = errors.New("value is not a number")
)

// Must panics if err is not nil and otherwise returns v. It is meant for
// figures built from literals known to be valid.
//
//	tri := figure.Must(figure.TriangleFrom(vertices))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
