package cli

import (
	"fmt"
	"time"

	"github.com/bitner/geotemporal-uuid/pkg/geouuid"
	"github.com/spf13/cobra"
)

// NewDecodeCommand constructs the `decode` command. It parses a canonical
// UUID string and prints the recovered coordinate and timestamp.
func NewDecodeCommand(codec *geouuid.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <uuid>",
		Short: "Decode an existing GeoTemporal UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := geouuid.Parse(args[0])
			if err != nil {
				return err
			}
			lat, lon, at := codec.Decode(u)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "UUID: %s\n", u)
			fmt.Fprintf(out, "Time: %s (%d)\n", at.Format(time.RFC3339Nano), at.UnixMilli())
			fmt.Fprintf(out, "Lat:  %.6f\n", lat)
			fmt.Fprintf(out, "Lon:  %.6f\n", lon)
			return nil
		},
	}
}
