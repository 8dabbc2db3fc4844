package cli

import (
	"fmt"

	"github.com/bitner/geotemporal-uuid/internal/timearg"
	"github.com/bitner/geotemporal-uuid/pkg/geouuid"
	"github.com/spf13/cobra"
)

// NewGenerateCommand constructs the `generate` command. It quantizes the
// given coordinate and prints the canonical UUID string.
func NewGenerateCommand(codec *geouuid.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new GeoTemporal UUID",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lat, _ := cmd.Flags().GetFloat64("lat")
			lon, _ := cmd.Flags().GetFloat64("lon")
			timeStr, _ := cmd.Flags().GetString("time")

			var (
				u   geouuid.UUID
				err error
			)
			if timeStr == "" {
				u, err = codec.Encode(lat, lon)
			} else {
				at, perr := timearg.Parse(timeStr)
				if perr != nil {
					return perr
				}
				u, err = codec.EncodeAt(lat, lon, at)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.String())
			return nil
		},
	}
	cmd.Flags().Float64("lat", 0, "Latitude (-90 to 90)")
	cmd.Flags().Float64("lon", 0, "Longitude (-180 to 180)")
	cmd.Flags().String("time", "", "Timestamp (unix ms or ISO-8601); defaults to now")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
