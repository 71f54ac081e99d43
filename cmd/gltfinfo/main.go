// Inspection tool for glTF files
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-gltf/gltf"
)

func main() {
	limit := flag.Int("n", 4, "number of elements to print per accessor")
	verbose := flag.Bool("v", false, "log buffer loading to stderr")
	showMetrics := flag.Bool("metrics", false, "print read metrics at the end")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gltfinfo [flags] <file.gltf|file.glb>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Printf("ERROR: creating logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	filename := flag.Arg(0)
	fmt.Printf("=== Analyzing %s ===\n\n", filename)

	doc, err := gltf.Open(filename, gltf.WithLogger(logger), gltf.WithMetrics(reg))
	if err != nil {
		fmt.Printf("ERROR: Failed to open file: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	fmt.Printf("Asset version: %s\n", doc.Version())
	if g := doc.Generator(); g != "" {
		fmt.Printf("Generator: %s\n", g)
	}
	fmt.Println()

	printBuffers(doc)
	printAccessors(doc, *limit)
	printSkins(doc)

	if *showMetrics {
		printMetrics(reg)
	}
}

func printBuffers(doc *gltf.Document) {
	for _, b := range doc.Buffers() {
		uri := b.URI()
		if uri == "" {
			uri = "<binary chunk>"
		} else if len(uri) > 48 {
			uri = uri[:45] + "..."
		}
		_, available := doc.Source().BufferData(b)
		fmt.Printf("Buffer %d %q: %d bytes, uri=%s, available=%t\n", b.Index(), b.Name(), b.ByteLength(), uri, available)
	}
	for _, v := range doc.Views() {
		stride := "packed"
		if s, ok := v.ByteStride(); ok {
			stride = fmt.Sprintf("stride %d", s)
		}
		fmt.Printf("  View %d %q: buffer %d [%d, %d) %s\n",
			v.Index(), v.Name(), v.Buffer().Index(), v.ByteOffset(), v.ByteOffset()+v.ByteLength(), stride)
	}
	fmt.Println()
}

func printAccessors(doc *gltf.Document, limit int) {
	for _, a := range doc.Accessors() {
		fmt.Printf("Accessor %d %q: %d x %s %s", a.Index(), a.Name(), a.Count(), a.Type(), a.ComponentType())
		if a.Normalized() {
			fmt.Print(" normalized")
		}
		fmt.Println()

		if v, ok := a.View(); ok {
			fmt.Printf("    View: %d, offset %d, element size %d\n", v.Index(), a.ByteOffset(), a.ElementSize())
		} else {
			fmt.Printf("    View: none (zero filled)\n")
		}
		if sp, ok := a.Sparse(); ok {
			idx := sp.Indices()
			fmt.Printf("    Sparse: %d overrides, indices %s in view %d, values in view %d\n",
				sp.Count(), idx.IndexType(), idx.View().Index(), sp.Values().View().Index())
		}
		if len(a.Min()) > 0 || len(a.Max()) > 0 {
			fmt.Printf("    Bounds: min=%v max=%v\n", a.Min(), a.Max())
		}

		it, err := gltf.Read[[]float64](a, nil)
		switch {
		case errors.Is(err, gltf.ErrUnavailable):
			fmt.Printf("    [DATA UNAVAILABLE]\n")
			continue
		case err != nil:
			fmt.Printf("    ERROR: %v\n", err)
			continue
		}

		n := 0
		for v, err := range it.All() {
			if n >= limit {
				fmt.Printf("    ... %d more\n", it.Len()-n)
				break
			}
			if err != nil {
				fmt.Printf("    [%d] ERROR: %v\n", n, err)
				break
			}
			fmt.Printf("    [%d] %v\n", n, v)
			n++
		}
	}
	fmt.Println()
}

func printSkins(doc *gltf.Document) {
	for _, s := range doc.Skins() {
		fmt.Printf("Skin %d %q: %d joints\n", s.Index(), s.Name(), len(s.Joints()))
		it, err := s.Reader(nil).ReadInverseBindMatrices()
		switch {
		case err != nil:
			fmt.Printf("    ERROR: %v\n", err)
		case it == nil:
			fmt.Printf("    Inverse bind matrices: identity\n")
		default:
			fmt.Printf("    Inverse bind matrices: %d\n", it.Len())
		}
	}
}

func printMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		fmt.Printf("ERROR: gathering metrics: %v\n", err)
		return
	}
	fmt.Println("Metrics:")
	for _, f := range families {
		for _, m := range f.GetMetric() {
			labels := ""
			for _, l := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%s ", l.GetName(), l.GetValue())
			}
			fmt.Printf("  %s %s%g\n", f.GetName(), labels, m.GetCounter().GetValue())
		}
	}
}
