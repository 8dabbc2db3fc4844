package cli

import (
	"github.com/bitner/geotemporal-uuid/pkg/geouuid"
	"github.com/spf13/cobra"
)

// NewRoot constructs the root Cobra command for the geouuid binary,
// registering the generate and decode commands against the given codec.
func NewRoot(codec *geouuid.Codec) *cobra.Command {
	root := &cobra.Command{
		Use:   "geouuid",
		Short: "GeoTemporal UUID generator and decoder",
		Long: "geouuid packs a coordinate, a timestamp, and a random disambiguator\n" +
			"into a 128-bit identifier that sorts chronologically, and unpacks it back.",
	}
	root.AddCommand(NewGenerateCommand(codec))
	root.AddCommand(NewDecodeCommand(codec))
	return root
}
