package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/avendel/framework-advisor/internal/report"
)

func main() {
	inputPath := flag.String("input", "", "Path to a saved advisory envelope JSON or markdown report")
	outputPath := flag.String("output", "report.pdf", "Path to write the PDF")
	webDir := flag.String("web-dir", "", "Optional directory containing a style.css override")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}
	in, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	renderer := report.NewChromiumPDFRenderer(*webDir)
	pdf, err := renderer.Render(context.Background(), string(in))
	if err != nil {
		log.Fatalf("render pdf: %v", err)
	}
	if err := os.WriteFile(*outputPath, pdf, 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	log.Printf("wrote %s (%d bytes)", *outputPath, len(pdf))
}
