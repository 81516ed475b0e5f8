// Command figures reads triangles, hexagons and octagons from text input
// and reports their total area, centers and areas.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	// Silence glog's complaint about logging before flag parsing; the
	// glog flags are parsed by cobra through pflag.
	_ = goflag.CommandLine.Parse(nil)
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
