package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/soypat/figure/render"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootStdin(t *testing.T) {
	out, err := execute(t, "triangle custom 0 0 3 0 0 4\ndone\n")
	require.NoError(t, err)
	require.NotContains(t, out, "Enter figures", "prompt shown for non-terminal input")
	require.Contains(t, out, "Total area of all figures: 6\n")
	require.Contains(t, out, "Number of figures: 1\n")
}

func TestRootFileOutputs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "figures.txt")
	require.NoError(t, os.WriteFile(in, []byte("hexagon regular 1 0 0\noctagon regular 2 5 5\n"), 0o644))
	plotPath := filepath.Join(dir, "figures.png")
	geoPath := filepath.Join(dir, "figures.geojson")

	out, err := execute(t, "", in, "--plot", plotPath, "--geojson", geoPath, "--probe", "5,5")
	require.NoError(t, err)
	require.Contains(t, out, "Number of figures: 2\n")
	require.Contains(t, out, "Point (5, 5) is inside figures: 2\n")

	st, err := os.Stat(plotPath)
	require.NoError(t, err)
	require.NotZero(t, st.Size())

	fp, err := os.Open(geoPath)
	require.NoError(t, err)
	defer fp.Close()
	c, err := render.ReadGeoJSON(fp)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	r, ok := c.At(1).Regular()
	require.True(t, ok)
	require.Equal(t, 2.0, r)
}

func TestRootStrict(t *testing.T) {
	_, err := execute(t, "triangle 0 0\n", "--strict")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")

	out, err := execute(t, "triangle 0 0\n")
	require.NoError(t, err)
	require.Contains(t, out, "error: line 1")
	require.Contains(t, out, "Number of figures: 0\n")
}

func TestRootBadFlags(t *testing.T) {
	_, err := execute(t, "", "--grammar", "yaml")
	require.Error(t, err)
	_, err = execute(t, "", "--probe", "1")
	require.Error(t, err)
	_, err = execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestRootConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "figures.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("grammar: tagged\nwkt: true\n"), 0o644))
	out, err := execute(t, "triangle 0 0 3 0 0 4\ntriangle custom 0 0 3 0 0 4\n", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "Number of figures: 1\n")
	require.Contains(t, out, "WKT: POLYGON ((0 0, 3 0, 0 4, 0 0))\n")
}

func TestRootEnv(t *testing.T) {
	const input = "triangle regular 3 0 0\n"
	out, err := execute(t, input)
	require.NoError(t, err)
	require.InDelta(t, 27*math.Sqrt(3)/4, reportedArea(t, out), 1e-9, "3 is a circumradius by default")

	t.Setenv("FIGURES_EDGE", "true")
	out, err = execute(t, input, "--wkt=false")
	require.NoError(t, err)
	require.Contains(t, out, "Number of figures: 1\n")
	require.NotContains(t, out, "WKT:")
	// Equilateral triangle with edge 3.
	require.InDelta(t, 9*math.Sqrt(3)/4, reportedArea(t, out), 1e-9)
}

// reportedArea returns the value of the first "Area:" line of out.
func reportedArea(t *testing.T, out string) float64 {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, "Area: "); ok {
			area, err := strconv.ParseFloat(v, 64)
			require.NoError(t, err)
			return area
		}
	}
	t.Fatalf("no area in output:\n%s", out)
	return 0
}
