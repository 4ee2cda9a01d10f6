package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/domainfisher/matches"
	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
)

// WriteReport writes one tab-separated row per family.
func WriteReport(w io.Writer, results []matches.Result) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	return gocsv.MarshalCSV(results, gocsv.NewSafeCSVWriter(cw))
}

// Summarize prints the families that contradict the assumption of an even
// distribution across both inputs, plus the spread of one-sided p-values.
func Summarize(w io.Writer, big, small matches.Source, results []matches.Result, opts matches.Options) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Tested %d families with the %s strategy at threshold %g\n", len(results), opts.Strategy, opts.Threshold)

	pvalues := make(stats.Float64Data, 0, len(results))
	for _, res := range results {
		pvalues = append(pvalues, res.Greater)
	}

	if len(pvalues) > 0 {
		minP, _ := stats.Min(pvalues)
		medianP, _ := stats.Median(pvalues)
		fmt.Fprintf(w, "One-sided p-values: min %.4g, median %.4g\n", minP, medianP)
	}

	interesting := matches.Interesting(results)
	if len(interesting) == 0 {
		fmt.Fprintln(w, "No family reached significance")
		return
	}

	fmt.Fprintln(w, "Some interesting domains:")
	fmt.Fprintln(w, "-------------------")
	for _, res := range interesting {
		fmt.Fprintf(w, "Matches in %s for %s: %d/%d\n", big.Name, res.Category, res.CountA, res.TotalA)
		fmt.Fprintf(w, "Matches in %s for %s: %d/%d\n", small.Name, res.Category, res.CountB, res.TotalB)
		if res.ComplementSignificant {
			fmt.Fprintf(w, "%s is enriched in %s rather than %s (p=%.4g)\n", res.Category, small.Name, big.Name, res.Complement)
		} else {
			fmt.Fprintf(w, "p=%.4g\n", res.Greater)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "They seem to contradict the assumption about even distribution of protein domains in both files")
}
