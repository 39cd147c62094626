package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/pkg/logger"
	"github.com/Gunvolt24/tma_shop/internal/tmaclient"
)

// CLI: полный каталог через /api/storefront работающего сервиса, по товару на строку (JSONL).
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	outPath := flag.String("out", "", "output file (.jsonl). If empty, writes to stdout.")
	pageSize := flag.Int("page-size", 100, "products per page (1..250)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	verbose := flag.Bool("v", false, "log pages to stderr")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	var log *logger.ZapLogger
	if *verbose {
		l, cleanup, err := logger.NewZapLogger(false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = cleanup() }()
		log = l
	} else {
		log = logger.NewNop()
	}

	loader := tmaclient.NewCatalogLoader(tmaclient.NewClient(*baseURL), *pageSize, log)
	products, err := loader.LoadAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := writeJSONL(out, products); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "catalog ok (products=%d)\n", len(products))
}

func writeJSONL(w io.Writer, products []domain.Product) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i := range products {
		if err := enc.Encode(&products[i]); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
	}
	return bw.Flush()
}
