// Command navicust loads a part catalog and a list of requirements from a
// JSON file, runs the placement solver, and prints the first solution (or
// every solution, or browses them interactively with -tui).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/navicust/navicust"
)

// catalog is the on-disk shape of the -input JSON file: a part list, a
// requirement list, grid settings, and which colors may be rotated.
type catalog struct {
	Parts           []navicust.Part        `json:"parts"`
	Requirements    []navicust.Requirement `json:"requirements"`
	Grid            navicust.GridSettings  `json:"grid"`
	SpinnableColors []bool                 `json:"spinnable_colors"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	// .env values only fill in flags the caller did not set explicitly;
	// the not-exist error godotenv.Load returns when no .env file exists
	// is ignored.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	fs := flag.NewFlagSet("navicust", flag.ContinueOnError)
	input := fs.String("input", envDefault("NAVICUST_INPUT", "catalog.json"), "path to the part/requirement catalog JSON file")
	limit := fs.Int("limit", 1, "number of solutions to print (0 means all)")
	nodeLimit := fs.Int64("node-limit", 0, "abort the search after this many branch-and-bound nodes (0 means unlimited)")
	tui := fs.Bool("tui", false, "browse solutions interactively in a terminal UI")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalog(*input)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []navicust.Option{navicust.WithContext(ctx)}
	if *nodeLimit > 0 {
		opts = append(opts, navicust.WithNodeLimit(*nodeLimit))
	}

	search := navicust.Solve(cat.Parts, cat.Requirements, cat.Grid, cat.SpinnableColors, opts...)

	if *tui {
		return browse(search, cat)
	}

	return printSolutions(search, cat, *limit)
}

func loadCatalog(path string) (catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog{}, err
	}
	defer f.Close()

	var cat catalog
	if err := json.NewDecoder(f).Decode(&cat); err != nil {
		return catalog{}, err
	}

	return cat, nil
}

func printSolutions(search *navicust.Search, cat catalog, limit int) error {
	n := 0
	for sol := range search.Solutions() {
		n++
		fmt.Printf("solution %d:\n", n)
		cells, err := navicust.PlaceAll(cat.Parts, cat.Requirements, sol, cat.Grid)
		if err != nil {
			return fmt.Errorf("verifying solution %d: %w", n, err)
		}
		printGrid(cells, cat.Grid)
		if limit > 0 && n >= limit {
			break
		}
	}
	if err := search.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("search stopped early: %w", err)
	}
	if n == 0 {
		fmt.Println("no solutions")
	}

	return nil
}

func printGrid(cells []int32, gs navicust.GridSettings) {
	for y := 0; y < gs.Height; y++ {
		for x := 0; x < gs.Width; x++ {
			v := cells[y*gs.Width+x]
			if v < 0 {
				fmt.Print(". ")
				continue
			}
			fmt.Printf("%d ", v)
		}
		fmt.Println()
	}
}

func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
