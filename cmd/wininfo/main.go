// Command wininfo prints spectral properties of the window generators.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 4096 blackman
//	wininfo -periodic -all
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecgen/dsp/window"
)

type windowEntry struct {
	name string
	typ  window.Type
}

var registry = []windowEntry{
	{"hann", window.TypeHannNormalized},
	{"hann-denorm", window.TypeHannDenormalized},
	{"hamming", window.TypeHamming},
	{"blackman", window.TypeBlackman},
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	all := flag.Bool("all", false, "show all window types")
	list := flag.Bool("list", false, "list available window names")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 4096 hamming\n")
		fmt.Fprintf(os.Stderr, "  wininfo -all\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	printAnalysis(entries, *size, opts)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []windowEntry {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []windowEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(entries []windowEntry, size int, opts []window.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		coeffs := window.Generate[float64](e.typ, size, opts...)

		a, err := window.Analyze(coeffs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: analysis of %q failed: %v\n", e.name, err)
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			e.name,
			size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
