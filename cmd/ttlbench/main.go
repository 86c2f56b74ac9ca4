// File: cmd/ttlbench/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/AutoCookies/pomai-ttl/internal/engine/ttlset"
	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

var (
	strategy  = flag.String("strategy", "all", "Strategy: redactor|heap|lazyheap|tree|all")
	items     = flag.Int("items", 100000, "Distinct item ids in the workload")
	ops       = flag.Int("ops", 1000000, "Total operations per run")
	readRatio = flag.Float64("ratio", 0.9, "Contains ratio (0.0-1.0)")
	ttlMin    = flag.Duration("ttl-min", 10*time.Millisecond, "Minimum TTL")
	ttlMax    = flag.Duration("ttl-max", 500*time.Millisecond, "Maximum TTL")
	seed      = flag.Int64("seed", 42, "Workload seed")
)

type result struct {
	name       string
	duration   time.Duration
	throughput float64
	hitRate    float64
}

func builders() map[string]func() ttlset.Set {
	return map[string]func() ttlset.Set{
		"redactor": func() ttlset.Set { return ttlset.NewRedactor(clock.System{}) },
		"heap":     func() ttlset.Set { return ttlset.NewHeapIndex(clock.System{}) },
		"lazyheap": func() ttlset.Set { return ttlset.NewLazyHeapIndex(clock.System{}) },
		"tree":     func() ttlset.Set { return ttlset.NewTreeIndex(clock.System{}) },
	}
}

func main() {
	flag.Parse()

	if *readRatio < 0 || *readRatio > 1 {
		log.Fatalf("invalid -ratio %v, want 0.0-1.0", *readRatio)
	}
	if *ttlMax < *ttlMin {
		log.Fatalf("-ttl-max %v is below -ttl-min %v", *ttlMax, *ttlMin)
	}

	all := builders()
	var names []string
	if *strategy == "all" {
		names = []string{"redactor", "lazyheap", "heap", "tree"}
	} else if _, ok := all[*strategy]; ok {
		names = []string{*strategy}
	} else {
		log.Fatalf("unknown strategy %q", *strategy)
	}

	fmt.Printf("ttlbench: %d ops, %d ids, ratio %.2f, ttl %v-%v, seed %d\n",
		*ops, *items, *readRatio, *ttlMin, *ttlMax, *seed)
	fmt.Println("------------------------------------------------------------")

	for _, name := range names {
		res := run(name, all[name]())
		fmt.Printf("%-9s %10v  %12.0f ops/s  hit rate %5.1f%%\n",
			res.name, res.duration.Round(time.Millisecond), res.throughput, res.hitRate*100)
	}
}

func run(name string, set ttlset.Set) result {
	rng := rand.New(rand.NewSource(*seed))
	ttlSpan := *ttlMax - *ttlMin

	// Warm the set so the first reads have something to hit.
	for i := 0; i < *items/10; i++ {
		set.Insert(uint64(rng.Intn(*items)), *ttlMin+time.Duration(rng.Int63n(int64(ttlSpan)+1)))
	}

	var reads, hits int
	start := time.Now()
	for i := 0; i < *ops; i++ {
		id := uint64(rng.Intn(*items))
		if rng.Float64() < *readRatio {
			reads++
			if set.Contains(id) {
				hits++
			}
		} else {
			set.Insert(id, *ttlMin+time.Duration(rng.Int63n(int64(ttlSpan)+1)))
		}
	}
	duration := time.Since(start)

	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(hits) / float64(reads)
	}
	return result{
		name:       name,
		duration:   duration,
		throughput: float64(*ops) / duration.Seconds(),
		hitRate:    hitRate,
	}
}
