// domainfisher compares how often each protein domain family occurs in two
// sets of proteins and applies Fisher's exact test to every family. Each input
// is a presence/absence table (first column a protein ID, then one 0/1 column
// per family), as CSV or TSV, optionally compressed, on local disk or in
// Google Storage. The first table is the reference: a small one-sided p-value
// means the family is enriched in it relative to the second table.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"runtime"

	"cloud.google.com/go/storage"
	"github.com/carbocation/domainfisher"
	_ "github.com/carbocation/domainfisher/compileinfoprint"
	"github.com/carbocation/domainfisher/domaintable"
	"github.com/carbocation/domainfisher/fisher"
	"github.com/carbocation/domainfisher/matches"
	"github.com/carbocation/pfx"
)

func main() {
	var (
		bigFile, smallFile string
		outFile            string
		strategyName       string
	)

	opts := matches.DefaultOptions()

	flag.StringVar(&bigFile, "big", "", "Reference presence/absence table (CSV or TSV, may be compressed, may be gs://).")
	flag.StringVar(&smallFile, "small", "", "Table to compare against the reference.")
	flag.Float64Var(&opts.Threshold, "threshold", opts.Threshold, "One-sided p-value at or below which a family is reported as significant.")
	flag.Float64Var(&opts.RatioCutoff, "ratio", opts.RatioCutoff, "If two-sided/one-sided p falls below this, the opposite direction is also tested.")
	flag.StringVar(&strategyName, "strategy", opts.Strategy.String(), "How each hypergeometric term is computed: 'direct' (factor cancellation) or 'log' (log space).")
	flag.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "Number of families tested concurrently.")
	flag.BoolVar(&opts.Verify, "verify", false, "Cross-check both term strategies on every family and abort if they disagree.")
	flag.Float64Var(&opts.VerifyTolerance, "tolerance", opts.VerifyTolerance, "Relative tolerance used by --verify.")
	flag.StringVar(&outFile, "out", "", "Output file for the per-family report. If not specified, writes to stdout")
	flag.Parse()

	if bigFile == "" || smallFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	strategy, err := fisher.ParseTermStrategy(strategyName)
	if err != nil {
		log.Fatalln(err)
	}
	opts.Strategy = strategy

	ctx := context.Background()

	var client *storage.Client
	if domainfisher.IsGoogleStoragePath(bigFile) || domainfisher.IsGoogleStoragePath(smallFile) {
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		defer client.Close()
	}

	log.Printf("Analyzing %s\n", bigFile)
	big, err := domaintable.Load(ctx, bigFile, client)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("%d families in %d proteins in %s\n", len(big.Counts), big.Total, bigFile)

	log.Printf("Analyzing %s\n", smallFile)
	small, err := domaintable.Load(ctx, smallFile, client)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("%d families in %d proteins in %s\n", len(small.Counts), small.Total, smallFile)

	results, err := matches.Analyze(ctx, big, small, opts)
	if err != nil {
		log.Fatalln(err)
	}

	// Writer
	var outWriter io.WriteCloser
	if outFile == "" {
		outWriter = os.Stdout
	} else {
		outWriter, err = os.Create(outFile)
		if err != nil {
			log.Fatalln(err)
		}
	}
	defer outWriter.Close()

	if err := WriteReport(outWriter, results); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	Summarize(os.Stderr, big, small, results, opts)
}
