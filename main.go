package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hailam/primport/internal/prim"
)

func main() {
	noCloth := flag.Bool("c", false, "Remove cloth meshes (when porting from ALPHA)")
	verbose := flag.Bool("v", false, "Enable verbose debug output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: primport [-c] [-v] <input-prim> <input-version> <output-version> <output-prim>")
		fmt.Fprintln(os.Stderr, "Game versions: HMA, ALPHA, HM2016, WOA (HMA input is not supported)")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(1)
	}
	args := flag.Args()
	inputPath, outputPath := args[0], args[3]
	inputVersion, err := prim.ParseGameVersion(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid input version: %v\n", err)
		os.Exit(1)
	}
	outputVersion, err := prim.ParseGameVersion(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid output version: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Porting input PRIM file: %s\n", inputPath)
	fmt.Printf("Porting from game version %s to %s\n", inputVersion, outputVersion)
	fmt.Printf("Porting to output PRIM file: %s\n", outputPath)
	p, err := prim.ReadFile(inputPath, inputVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading PRIM: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		p.Dump(os.Stdout)
	}
	if err := p.WriteFile(outputPath, outputVersion, *noCloth); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PRIM: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Ported successfully!")
}
