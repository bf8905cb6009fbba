// Command genarch generates a residential floor plan from a constraints
// document and writes it as JSON.
//
// Usage:
//
//	genarch -in constraints.json -out plan.json [-seed 42] [-cache plans.db] [-strict]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/MOH131185/genarch/export"
	"github.com/MOH131185/genarch/generate"
	"github.com/MOH131185/genarch/plan"
	"github.com/MOH131185/genarch/store"
)

func main() {
	var (
		inPath    = flag.String("in", "", "constraints JSON document (required)")
		outPath   = flag.String("out", "plan.json", "output plan JSON path")
		seed      = flag.Int64("seed", generate.DefaultSeed, "deterministic generation seed")
		cachePath = flag.String("cache", "", "optional SQLite plan cache path")
		strict    = flag.Bool("strict", false, "enable strict regulation checks")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("open constraints: %v", err)
	}
	c, err := plan.DecodeConstraints(f)
	f.Close()
	if err != nil {
		log.Fatalf("decode constraints: %v", err)
	}

	fp, md, err := generatePlan(c, *seed, *strict, *cachePath)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if err := export.WriteFile(*outPath, fp, md); err != nil {
		log.Fatalf("write plan: %v", err)
	}

	log.Printf("plan %s: %d rooms, %d walls, %d openings, %.1fm²",
		md.RunID, len(fp.Rooms), len(fp.Walls), len(fp.Openings), fp.TotalArea)
	for name, passed := range md.ValidationResults {
		if !passed {
			log.Printf("validation failed: %s", name)
		}
	}
	if !md.AllPassed() {
		os.Exit(1)
	}
}

// generatePlan runs the pipeline, consulting the cache first when one is
// configured and storing fresh results back into it.
func generatePlan(c *plan.Constraints, seed int64, strict bool, cachePath string) (*plan.FloorPlan, *plan.RunMetadata, error) {
	if cachePath == "" {
		return run(c, seed, strict)
	}

	db, err := store.OpenSQLite(cachePath)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	if err := db.EnsureSchema(); err != nil {
		return nil, nil, err
	}

	key, err := store.Fingerprint(c, seed)
	if err != nil {
		return nil, nil, err
	}
	if fp, md, ok, err := db.Get(key); err != nil {
		return nil, nil, err
	} else if ok {
		log.Printf("cache hit %s", key[:12])
		return fp, md, nil
	}

	fp, md, err := run(c, seed, strict)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Put(key, seed, fp, md); err != nil {
		return nil, nil, err
	}
	return fp, md, nil
}

func run(c *plan.Constraints, seed int64, strict bool) (*plan.FloorPlan, *plan.RunMetadata, error) {
	opts := []generate.Option{generate.WithSeed(seed)}
	if strict {
		opts = append(opts, generate.WithStrict())
	}
	res, err := generate.Run(c, opts...)
	if err != nil {
		return nil, nil, err
	}
	return res.Plan, res.Metadata, nil
}
