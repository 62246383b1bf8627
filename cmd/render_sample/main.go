// Renders the built-in sample CV to PDF without a database, for
// checking the template and the Chrome setup locally:
//
//	go run ./cmd/render_sample -locale en -out sample_en.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cv-exporter/internal/usecase"
	infra "cv-exporter/pkg/infrastructure"

	"go.uber.org/zap"
)

func main() {
	locale := flag.String("locale", "fr", "document locale (fr or en)")
	out := flag.String("out", "", "output path (default <Name>_CV_<LOCALE>.pdf)")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	exporter, err := usecase.NewExporter(nil, infra.NewChromedpRenderer(), nil, nil, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "exporter init: %v\n", err)
		os.Exit(2)
	}

	pdf, filename, err := exporter.ExportPDF(context.Background(), *locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	path := *out
	if path == "" {
		path = filename
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(pdf))
}
