package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larsvik/autodim/pkg/annotate"
	"github.com/larsvik/autodim/pkg/dimension"
	"github.com/larsvik/autodim/pkg/scene"
)

var dxfOutput string

var dxfCmd = &cobra.Command{
	Use:   "dxf [scene]",
	Short: "Write the dimension annotations for a scene to a DXF file",
	Long:  "Run the selection pipeline and draw every resulting dimension line, projected into the view plane, into a DXF drawing.",
	Args:  cobra.ExactArgs(1),
	Run:   runDXF,
}

func init() {
	rootCmd.AddCommand(dxfCmd)

	dxfCmd.Flags().StringVarP(&dxfOutput, "output", "o", "dimensions.dxf", "Output DXF file")
}

func runDXF(cmd *cobra.Command, args []string) {
	sc, err := scene.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	writer, err := annotate.NewDXFWriter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating DXF writer: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	view := sc.BuildView()
	planner := &dimension.Planner{Log: logger}

	created := 0
	for _, beam := range sc.Beams {
		solid, err := beam.Build()
		if err != nil {
			logger.Error("skipping beam", "beam", beam.Name, "error", err)
			continue
		}
		for _, plan := range planner.BuildPlans(solid, view) {
			// Backend rejections are reported per beam, not retried.
			if err := writer.Create(view, plan); err != nil {
				logger.Error("annotation failed", "beam", beam.Name, "error", err)
				continue
			}
			created++
		}
	}

	if err := writer.SaveAs(dxfOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing DXF: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d annotation(s) to %s\n", created, dxfOutput)
}
