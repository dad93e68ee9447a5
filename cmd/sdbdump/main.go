// Command sdbdump reads an SDB database and prints a summary or a
// decoded correlation array.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/sdb-format/go-sdb/dbsource"
	"github.com/sdb-format/go-sdb/sdb"
)

var (
	inputFile        = flag.String("i", "", "input file path (required)")
	member           = flag.String("member", "", "archive member name (auto-detected if omitted)")
	correlationArray = flag.Int("correlation-array", -1, "print the decoded correlation array at this index")
	jsonOutput       = flag.Bool("json", false, "output as JSON")
	version          = flag.Bool("version", false, "print version and exit")
)

const appVersion = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i <file> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reads an SDB database and prints a summary of its sections.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i db.sdb\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i db.sdb.zst -correlation-array 42\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i words.zip -member db.sdb -json\n", os.Args[0])
	}
	flag.Parse()

	if *version {
		fmt.Printf("sdbdump version %s\n", appVersion)
		os.Exit(0)
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	src, closer, err := dbsource.Open(afero.NewOsFs(), *inputFile, *member)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", *inputFile, err)
		os.Exit(1)
	}
	defer closer.Close()

	db, err := sdb.NewReader(src).Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading database: %v\n", err)
		os.Exit(1)
	}

	if *correlationArray >= 0 {
		idx := sdb.CorrelationArrayIndex(*correlationArray)
		strings, err := db.CompleteCorrelation(idx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error completing correlation array %d: %v\n", *correlationArray, err)
			os.Exit(1)
		}
		if *jsonOutput {
			outputCorrelationJSON(strings)
		} else {
			outputCorrelationText(strings)
		}
		return
	}

	if *jsonOutput {
		outputSummaryJSON(db)
	} else {
		outputSummaryText(db)
	}
}

type summary struct {
	SymbolArrays      int `json:"symbol_arrays"`
	Languages         int `json:"languages"`
	Alphabets         int `json:"alphabets"`
	Conversions       int `json:"conversions"`
	Correlations      int `json:"correlations"`
	CorrelationArrays int `json:"correlation_arrays"`
	Acceptations      int `json:"acceptations"`
	Definitions       int `json:"definitions"`
	MaxConcept        int `json:"max_concept"`
}

func summarize(db *sdb.Database) summary {
	return summary{
		SymbolArrays:      len(db.SymbolArrays),
		Languages:         len(db.Languages),
		Alphabets:         int(db.AlphabetCount),
		Conversions:       len(db.Conversions),
		Correlations:      len(db.Correlations),
		CorrelationArrays: len(db.CorrelationArrays),
		Acceptations:      len(db.Acceptations),
		Definitions:       len(db.Definitions),
		MaxConcept:        int(db.MaxConcept),
	}
}

func outputSummaryText(db *sdb.Database) {
	s := summarize(db)
	fmt.Printf("Symbol arrays:      %d\n", s.SymbolArrays)
	fmt.Printf("Languages:          %d\n", s.Languages)
	fmt.Printf("Alphabets:          %d\n", s.Alphabets)
	fmt.Printf("Conversions:        %d\n", s.Conversions)
	fmt.Printf("Correlations:       %d\n", s.Correlations)
	fmt.Printf("Correlation arrays: %d\n", s.CorrelationArrays)
	fmt.Printf("Acceptations:       %d\n", s.Acceptations)
	fmt.Printf("Definitions:        %d\n", s.Definitions)
	fmt.Printf("Max concept:        %d\n", s.MaxConcept)
	for _, lang := range db.Languages {
		fmt.Printf("  language %s: %d alphabets\n", lang.Code, lang.AlphabetCount)
	}
}

func outputSummaryJSON(db *sdb.Database) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summarize(db)); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func outputCorrelationText(strings map[sdb.Alphabet]string) {
	for alphabet, text := range strings {
		fmt.Printf("%d=%s\n", alphabet, text)
	}
}

func outputCorrelationJSON(strings map[sdb.Alphabet]string) {
	out := make(map[string]string, len(strings))
	for alphabet, text := range strings {
		out[fmt.Sprintf("%d", alphabet)] = text
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
