package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/soypat/figure"
	"github.com/soypat/figure/render"
	"gonum.org/v1/gonum/spatial/r2"
)

const doneKeyword = "done"

// session accumulates figures read from text input lines of the form
//
//	<triangle|hexagon|octagon> <figure text>
//
// until a line holding only "done" or the end of input.
type session struct {
	dec figure.Decoder
	// edge interprets the size of regular figures as edge length.
	edge bool
	// strict stops at the first malformed line.
	strict bool
	figs   figure.Collection
}

// readFrom consumes lines from r. Malformed lines are reported to errw and
// skipped unless the session is strict.
func (s *session) readFrom(r io.Reader, errw io.Writer) error {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		done, err := s.handle(sc.Text())
		if err != nil {
			err = errors.Wrapf(err, "line %d", lineno)
			if s.strict {
				return err
			}
			glog.Warning(err)
			fmt.Fprintln(errw, "error:", err)
			continue
		}
		if done {
			break
		}
	}
	return sc.Err()
}

// handle decodes a single input line. Blank lines and lines starting
// with # are ignored.
func (s *session) handle(line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	name, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, rest = line[:i], line[i:]
	}
	if strings.EqualFold(name, doneKeyword) {
		return true, nil
	}
	k, err := figure.ParseKind(name)
	if err != nil {
		return false, errors.Wrap(err, "available types: triangle, hexagon, octagon")
	}
	f, err := s.dec.Decode(k, rest)
	if err != nil {
		return false, err
	}
	if r, ok := f.Regular(); ok && s.edge {
		f.SetRegular(figure.CircumradiusFromEdge(k.Arity(), r), f.Center())
	}
	s.figs.Add(f)
	if glog.V(2) {
		glog.Infof("added figure %d: %s", s.figs.Len(), f)
	}
	return false, nil
}

type reportOptions struct {
	wkt   bool
	probe *r2.Vec
}

// report prints the aggregate and per figure summary.
func (s *session) report(w io.Writer, opts reportOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "\n=== Results ===")
	fmt.Fprintln(bw, "Total area of all figures:", formatFloat(s.figs.TotalArea()))
	fmt.Fprintln(bw, "Number of figures:", s.figs.Len())
	err := s.figs.Each(func(i int, f figure.Figure) error {
		c := f.Center()
		fmt.Fprintf(bw, "\nFigure %d:\n%s\n", i+1, f)
		fmt.Fprintf(bw, "Center: (%s, %s)\n", formatFloat(c.X), formatFloat(c.Y))
		fmt.Fprintln(bw, "Area:", formatFloat(f.Value()))
		if opts.wkt {
			text, err := render.MarshalWKT(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(bw, "WKT:", text)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if opts.probe != nil {
		idx := s.figs.Containing(*opts.probe)
		names := make([]string, len(idx))
		for i, j := range idx {
			names[i] = strconv.Itoa(j + 1)
		}
		list := strings.Join(names, ", ")
		if list == "" {
			list = "none"
		}
		fmt.Fprintf(bw, "\nPoint (%s, %s) is inside figures: %s\n", formatFloat(opts.probe.X), formatFloat(opts.probe.Y), list)
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parsePoint parses "x,y".
func parsePoint(s string) (r2.Vec, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return r2.Vec{}, errors.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return r2.Vec{}, errors.Wrapf(err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return r2.Vec{}, errors.Wrapf(err, "point %q", s)
	}
	return r2.Vec{X: x, Y: y}, nil
}
