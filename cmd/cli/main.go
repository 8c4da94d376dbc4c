package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/hailam/primport/internal/adapters/factory"
	adapterutils "github.com/hailam/primport/internal/adapters/utils"
	"github.com/hailam/primport/internal/application"
	"github.com/hailam/primport/internal/ports"

	// Blank imports run the exporter init() registrations.
	_ "github.com/hailam/primport/internal/adapters/dxf"
	_ "github.com/hailam/primport/internal/adapters/pdf"
	_ "github.com/hailam/primport/internal/adapters/xlsx"
)

// Variables to hold flag values
var noCloth bool
var verbose bool

func main() {
	// --- Composition Root: Initialize Adapters and Core Logic ---
	exporterFactory := factory.NewExporterFactory()
	versionParser := adapterutils.NewPrimVersionParser()
	portService := application.NewPortService(exporterFactory, versionParser, os.Stdout)
	// --- End Composition Root ---

	var rootCmd = &cobra.Command{
		Use:   "primport <input-prim> <input-version> <output-version> <output-prim>",
		Short: "Ports PRIM mesh files between game versions.",
		Long: `primport is a CLI tool to port PRIM 3D mesh container files between the
HMA, ALPHA, HM2016 and WOA game engine generations. It rewrites the
version-conditional record layouts and can optionally drop cloth
sub-objects. HMA is accepted as an output version only.`,
		Args: cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			req := ports.PortRequest{
				InputPath:     args[0],
				InputVersion:  args[1],
				OutputVersion: args[2],
				OutputPath:    args[3],
				NoCloth:       noCloth,
				Verbose:       verbose,
			}

			// The verbose dump shares stdout, so no spinner then.
			var spin *spinner.Spinner
			if !verbose {
				spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				spin.Prefix = fmt.Sprintf("Porting %s (%s -> %s)... ", req.InputPath, req.InputVersion, req.OutputVersion)
				spin.Start()
			}
			err := portService.Port(req)
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error porting PRIM: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("Successfully ported %s to %s (%s)\n", req.InputPath, req.OutputPath, req.OutputVersion)
		},
	}

	rootCmd.Flags().BoolVarP(&noCloth, "no-cloth", "c", false, "Remove cloth meshes (when porting from ALPHA)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Dump every record to stdout while porting")

	var exportCmd = &cobra.Command{
		Use:   "export <input-prim> <input-version> <output.{dxf,xlsx,pdf}>",
		Short: "Exports a PRIM file as a wireframe drawing or statistics report.",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			spin.Prefix = fmt.Sprintf("Exporting %s... ", args[0])
			spin.Start()
			err := portService.ExportFile(args[0], args[1], args[2])
			spin.Stop()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error exporting PRIM: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Successfully exported %s to %s\n", args[0], args[2])
		},
	}
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
