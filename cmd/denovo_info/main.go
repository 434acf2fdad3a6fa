// Package main provides a command-line utility to inspect Denovo output files.
// It reports whether a file is Denovo output and prints its parameters,
// domain, field list and field units.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/scigolib/denovo"
	"github.com/scigolib/denovo/internal/h5"
)

func main() {
	// Define command-line flags
	checkOnly := flag.Bool("check", false, "Only report whether the file is Denovo output")
	tree := flag.Bool("tree", false, "Also print the HDF5 object tree")
	verbose := flag.Bool("v", false, "Enable informational logging")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: denovo_info [flags] <file.out.h5>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	if *verbose {
		denovo.SetLogLevel(denovo.LogLevelInfo)
	}

	file := args[0]
	marker, ok := denovo.MarkerGroup(file)
	if *checkOnly {
		if !ok {
			fmt.Printf("%s: not Denovo output\n", file)
			os.Exit(1)
		}
		fmt.Printf("%s: Denovo output (%s)\n", file, marker)
		return
	}
	if !ok {
		log.Fatalf("%s is not a Denovo output file", file)
	}

	if *tree {
		if err := printTree(file); err != nil {
			log.Fatalf("Failed to read tree: %v", err)
		}
	}

	ds, err := denovo.Load(file)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	defer func() {
		if err := ds.Close(); err != nil {
			log.Printf("Failed to close dataset: %v", err)
		}
	}()

	printDataset(ds)
}

func printTree(file string) error {
	f, err := h5.Open(file)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	fmt.Printf("HDF5 superblock version %d\n", f.SuperblockVersion())
	h5.Walk(f.Root(), func(path string, obj h5.Object) {
		switch obj.(type) {
		case h5.Group:
			fmt.Printf("  [Group]   %s\n", path)
		case h5.Dataset:
			fmt.Printf("  [Dataset] %s\n", path)
		default:
			fmt.Printf("  [Unknown] %s (%T)\n", path, obj)
		}
	})
	fmt.Println()
	return nil
}

func printDataset(ds *denovo.Dataset) {
	fmt.Println(ds)
	fmt.Printf("Marker group:   %s\n", ds.MarkerGroup)
	fmt.Printf("Units:          length=%s mass=%s time=%s\n", ds.Units.Length, ds.Units.Mass, ds.Units.Time)
	fmt.Printf("Domain:         left=%v right=%v dims=%v\n", ds.DomainLeftEdge, ds.DomainRightEdge, ds.DomainDimensions)
	fmt.Printf("Periodicity:    %v\n", ds.Periodicity)
	fmt.Printf("Fluid types:    %s\n", strings.Join(ds.FluidTypes, ", "))

	if meshes := ds.Index().Meshes; len(meshes) > 0 {
		fmt.Printf("Mesh:           %d vertices, %d hexahedra\n", meshes[0].NumVertices(), meshes[0].NumCells())
	} else {
		fmt.Println("Mesh:           none (no mesh coordinates)")
	}

	fmt.Println("\nParameters:")
	for _, key := range ds.Parameters.Keys() {
		v, _ := ds.Parameters.Get(key)
		fmt.Printf("  %-20s %s\n", key, summarize(v))
	}

	fmt.Println("\nFields:")
	for _, f := range ds.FieldList() {
		units, err := ds.FieldUnits(f)
		if err != nil {
			units = "?"
		}
		if units == "" {
			units = "dimensionless"
		}
		fmt.Printf("  %-28s %s\n", f, units)
	}

	aliases := ds.FieldInfo().Aliases()
	if len(aliases) == 0 {
		return
	}
	lines := make([]string, 0, len(aliases))
	for alias, target := range aliases {
		lines = append(lines, fmt.Sprintf("  %-28s -> %s", alias, target))
	}
	sort.Strings(lines)
	fmt.Println("\nAliases:")
	for _, l := range lines {
		fmt.Println(l)
	}
}

// summarize prints short arrays in full and long ones as count and range.
func summarize(v any) string {
	switch values := v.(type) {
	case []float64:
		if len(values) <= 8 {
			return fmt.Sprint(values)
		}
		lo, hi := values[0], values[0]
		for _, x := range values {
			lo, hi = min(lo, x), max(hi, x)
		}
		return fmt.Sprintf("[%d values, %g .. %g]", len(values), lo, hi)
	case []string:
		if len(values) <= 4 {
			return fmt.Sprintf("%q", values)
		}
		return fmt.Sprintf("[%d strings]", len(values))
	default:
		return fmt.Sprint(v)
	}
}
