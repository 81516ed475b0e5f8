package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/soypat/figure"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSessionReadFrom(t *testing.T) {
	input := `# comment
triangle custom 0 0 3 0 0 4

hexagon regular 1 0 0
pentagon 0 0 1 1
triangle 0 0 1
octagon 0 0 1 0 2 1 2 2 1 3 0 3 -1 2 -1 1
done
triangle 0 0 1 0 0 1
`
	var s session
	var errw bytes.Buffer
	require.NoError(t, s.readFrom(strings.NewReader(input), &errw))
	require.Equal(t, 3, s.figs.Len())
	require.Equal(t, figure.KindTriangle, s.figs.At(0).Kind())
	require.Equal(t, figure.KindHexagon, s.figs.At(1).Kind())
	require.Equal(t, figure.KindOctagon, s.figs.At(2).Kind())

	msgs := strings.Split(strings.TrimSpace(errw.String()), "\n")
	require.Len(t, msgs, 2)
	require.Contains(t, msgs[0], "line 5")
	require.Contains(t, msgs[0], "available types")
	require.Contains(t, msgs[1], "line 6")
	require.True(t, strings.HasPrefix(msgs[1], "error: "))
}

func TestSessionStrict(t *testing.T) {
	s := session{strict: true}
	err := s.readFrom(strings.NewReader("triangle 0 0 1 0 0 1\ntriangle regular x 0 0\nhexagon regular 1 0 0\n"), nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, figure.ErrNotNumber), err.Error())
	require.Contains(t, err.Error(), "line 2")
	require.Equal(t, 1, s.figs.Len())
}

func TestSessionEdge(t *testing.T) {
	s := session{edge: true}
	_, err := s.handle("hexagon regular 2 1 1")
	require.NoError(t, err)
	r, ok := s.figs.At(0).Regular()
	require.True(t, ok)
	// A regular hexagon's edge equals its circumradius.
	require.InDelta(t, 2, r, 1e-12)

	_, err = s.handle("triangle regular 1 0 0")
	require.NoError(t, err)
	r, _ = s.figs.At(1).Regular()
	require.InDelta(t, 1/math.Sqrt(3), r, 1e-12)
}

func TestSessionGrammar(t *testing.T) {
	s := session{dec: figure.Decoder{Grammar: figure.GrammarTagged}}
	_, err := s.handle("triangle 0 0 1 0 0 1")
	require.True(t, errors.Is(err, figure.ErrUnknownMode))
	done, err := s.handle("  DONE  ")
	require.NoError(t, err)
	require.True(t, done)
}

func TestReport(t *testing.T) {
	var s session
	_, err := s.handle("triangle custom 0 0 3 0 0 4")
	require.NoError(t, err)
	_, err = s.handle("triangle 9 9 12 9 9 12")
	require.NoError(t, err)

	var out bytes.Buffer
	probe := r2.Vec{X: 0.5, Y: 0.5}
	require.NoError(t, s.report(&out, reportOptions{wkt: true, probe: &probe}))
	want := `
=== Results ===
Total area of all figures: 10.5
Number of figures: 2

Figure 1:
Triangle vertices: (0, 0) (3, 0) (0, 4) | Center: (1, 1.3333333333333333)
Center: (1, 1.3333333333333333)
Area: 6
WKT: POLYGON ((0 0, 3 0, 0 4, 0 0))

Figure 2:
Triangle vertices: (9, 9) (12, 9) (9, 12) | Center: (10, 10)
Center: (10, 10)
Area: 4.5
WKT: POLYGON ((9 9, 12 9, 9 12, 9 9))

Point (0.5, 0.5) is inside figures: 1
`
	require.Equal(t, want, out.String())
}

func TestReportEmpty(t *testing.T) {
	var s session
	var out bytes.Buffer
	probe := r2.Vec{}
	require.NoError(t, s.report(&out, reportOptions{probe: &probe}))
	require.Contains(t, out.String(), "Total area of all figures: 0\n")
	require.Contains(t, out.String(), "Number of figures: 0\n")
	require.Contains(t, out.String(), "is inside figures: none\n")
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 1.5, -2 ")
	require.NoError(t, err)
	require.Equal(t, r2.Vec{X: 1.5, Y: -2}, p)
	for _, bad := range []string{"", "1", "a,1", "1,b"} {
		_, err := parsePoint(bad)
		require.Error(t, err, bad)
	}
}
