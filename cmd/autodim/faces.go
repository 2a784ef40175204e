package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larsvik/autodim/pkg/dimension"
	"github.com/larsvik/autodim/pkg/geometry"
	"github.com/larsvik/autodim/pkg/scene"
)

var facesCmd = &cobra.Command{
	Use:   "faces [scene]",
	Short: "Inspect face classification for every beam in a scene",
	Long:  "Print each beam's faces with their openness, which ones qualify as side faces for the view, and the resolved opposite pair.",
	Args:  cobra.ExactArgs(1),
	Run:   runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)
}

func runFaces(cmd *cobra.Command, args []string) {
	sc, err := scene.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	view := sc.BuildView()

	for _, beam := range sc.Beams {
		solid, err := beam.Build()
		if err != nil {
			logger.Error("skipping beam", "beam", beam.Name, "error", err)
			continue
		}

		fmt.Printf("%s: %d face(s)\n", beam.Name, len(solid.Faces))
		for i, f := range solid.Faces {
			fmt.Printf("  face %d: normal (%.2f, %.2f, %.2f)  loops %d  %s\n",
				i+1, f.Normal.X, f.Normal.Y, f.Normal.Z,
				len(f.Loops), dimension.FaceOpenness(f))
			for _, loop := range f.Loops {
				if loop.CounterClockwise(f.Normal) {
					continue
				}
				// Inner loops wind clockwise; report the opening they cut.
				fit, err := geometry.FitCircle(loop.Vertices(), f.Normal)
				if err != nil {
					fmt.Printf("    opening: non-circular (%v)\n", err)
					continue
				}
				fmt.Printf("    opening: center (%.3f, %.3f, %.3f)  radius %.3f\n",
					fit.Center.X, fit.Center.Y, fit.Center.Z, fit.Radius)
			}
		}

		faces := dimension.SideFaces(solid, view)
		fmt.Printf("  side faces for view: %d\n", len(faces))
		if a, b, ok := dimension.OppositeFaces(faces); ok {
			fmt.Printf("  opposite pair: (%.2f, %.2f, %.2f) / (%.2f, %.2f, %.2f)\n",
				a.Normal.X, a.Normal.Y, a.Normal.Z,
				b.Normal.X, b.Normal.Y, b.Normal.Z)
			set := dimension.ClassifyEdges(view, a, b)
			fmt.Printf("  aligned edges: %d, dimension line candidates: %d\n",
				len(set.Aligned), len(set.Lines))
		} else {
			fmt.Println("  opposite pair: none")
		}
	}
}
