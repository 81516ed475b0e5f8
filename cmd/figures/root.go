package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/soypat/figure"
	"github.com/soypat/figure/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usageText = `Enter figures, one per line:
  <type> regular <radius> <cx> <cy>
  <type> custom <x1> <y1> ... <xN> <yN>
  <type> <x1> <y1> ... <xN> <yN>
Types and required vertices:
  triangle - 3 vertices (6 numbers)
  hexagon  - 6 vertices (12 numbers)
  octagon  - 8 vertices (16 numbers)
Examples:
  triangle custom 0 0 3 0 0 4
  hexagon regular 2.5 1 1
Enter 'done' to finish input`

// newRootCmd returns the figures command. Flags are bound to conf, which
// also reads FIGURES_* environment variables and an optional config file.
func newRootCmd(conf *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "figures [input file]",
		Short: "Compute area and center of triangles, hexagons and octagons",
		Long: `figures reads one figure per line from a file or standard input until
'done', then prints the total area and the center and area of every figure.

` + usageText,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer glog.Flush()
			in := cmd.InOrStdin()
			if len(args) == 1 {
				fp, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer fp.Close()
				in = fp
			}
			return run(conf, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	flags.String("grammar", "auto", "Accepted figure text: auto, tagged or plain.")
	flags.Bool("edge", false, "Interpret the size of regular figures as edge length instead of circumradius.")
	flags.Bool("strict", false, "Stop at the first malformed input line.")
	flags.Bool("prompt", true, "Print input instructions when reading from a terminal.")
	flags.Bool("wkt", false, "Print every figure as WKT.")
	flags.String("probe", "", "Report which figures contain the point x,y.")
	flags.String("plot", "", "Draw figures to an image file (png, svg, pdf).")
	flags.String("geojson", "", "Write figures to a GeoJSON file.")
	flags.Bool("centers", true, "Mark figure centers on the plot.")
	// glog registers -v, -logtostderr and friends on the standard flag set.
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	if err := conf.BindPFlags(flags); err != nil {
		panic(err)
	}
	conf.SetEnvPrefix("FIGURES")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := conf.GetString("config")
		if cfg == "" {
			return nil
		}
		conf.SetConfigFile(cfg)
		return errors.Wrap(conf.ReadInConfig(), "reading config")
	}
	return cmd
}

func run(conf *viper.Viper, in io.Reader, out, errw io.Writer) error {
	grammar, err := figure.ParseGrammar(conf.GetString("grammar"))
	if err != nil {
		return err
	}
	var opts reportOptions
	opts.wkt = conf.GetBool("wkt")
	if p := conf.GetString("probe"); p != "" {
		pt, err := parsePoint(p)
		if err != nil {
			return err
		}
		opts.probe = &pt
	}
	s := &session{
		dec:    figure.Decoder{Grammar: grammar},
		edge:   conf.GetBool("edge"),
		strict: conf.GetBool("strict"),
	}
	glog.V(1).Infof("reading figures: grammar=%s edge=%v strict=%v", grammar, s.edge, s.strict)
	if conf.GetBool("prompt") && isTerminal(in) {
		fmt.Fprintln(out, usageText)
	}
	if err := s.readFrom(in, errw); err != nil {
		return err
	}
	if err := s.report(out, opts); err != nil {
		return err
	}

	if path := conf.GetString("plot"); path != "" {
		cfg := render.PlotConfig{Title: "figures", Centers: conf.GetBool("centers")}
		if err := render.CreatePlot(path, &s.figs, cfg); err != nil {
			return errors.Wrapf(err, "plotting to %s", path)
		}
		glog.Infof("wrote plot of %d figures to %s", s.figs.Len(), path)
	}
	if path := conf.GetString("geojson"); path != "" {
		if err := writeGeoJSON(path, &s.figs); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		glog.Infof("wrote %d features to %s", s.figs.Len(), path)
	}
	return nil
}

func writeGeoJSON(path string, c *figure.Collection) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = render.WriteGeoJSON(fp, c)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}
