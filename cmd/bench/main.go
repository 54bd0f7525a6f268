// Command bench compares the skip list against a sorted-vector map
// under a configurable single-threaded workload and prints a summary
// table per implementation.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/skiplist"
	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/workload"
)

const (
	opPut = iota
	opGet
	opDelete
)

type benchOp struct {
	kind int
	key  int64
	val  int
}

func main() {
	var n int64
	var ops int
	var seed int64
	var impls string
	var dist string
	var runs int
	var writes int
	var p float64
	var maxLevel int

	flag.Int64Var(&n, "n", 1<<12, "size of the key space")
	flag.IntVar(&ops, "ops", 100000, "number of operations per run")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for the key stream")
	flag.StringVar(&impls, "impl", "all", "implementations to run: all or comma list (skiplist,sortedvec)")
	flag.StringVar(&dist, "dist", "uniform", "key distribution: uniform, ascending or zipf")
	flag.IntVar(&runs, "runs", 5, "how many times to repeat each benchmark")
	flag.IntVar(&writes, "writes", 50, "percentage of write operations (puts and deletes)")
	flag.Float64Var(&p, "p", skiplist.DefaultProbability, "skip list promotion probability")
	flag.IntVar(&maxLevel, "maxlevel", skiplist.DefaultMaxLevel, "skip list maximum level")
	flag.Parse()

	if ops <= 0 || runs <= 0 {
		log.Fatalf("invalid -ops or -runs: ops=%d runs=%d", ops, runs)
	}
	if writes < 0 || writes > 100 {
		log.Fatalf("invalid -writes: %d is not a percentage", writes)
	}
	if err := skiplist.ValidateParams(maxLevel, p); err != nil {
		log.Fatalf("skiplist config: %v", err)
	}

	stream, err := newStream(dist, n, seed)
	if err != nil {
		log.Fatalf("%v", err)
	}

	toRun := parseImpls(impls)
	fmt.Printf("ops: %d, key space: %d, dist: %s, writes: %d%%, seed: %d\n", ops, n, dist, writes, seed)
	fmt.Printf("implementations to test: %s\n", strings.Join(toRun, ","))
	fmt.Println(strings.Repeat("=", 70))

	sequence := generateOps(stream, ops, writes, seed)

	rows := make([][]string, 0, len(toRun))
	for _, impl := range toRun {
		fmt.Printf("benchmarking %s...\n", impl)
		durations := make([]time.Duration, 0, runs)
		for r := 0; r < runs; r++ {
			elapsed, err := runOnce(impl, sequence, maxLevel, p)
			if err != nil {
				log.Fatalf("run %s: %v", impl, err)
			}
			durations = append(durations, elapsed)
		}
		rows = append(rows, summarize(impl, runs, ops, durations))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Impl", "Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func newStream(dist string, n, seed int64) (workload.Stream, error) {
	switch dist {
	case "uniform":
		return workload.NewUniform(n, seed), nil
	case "ascending":
		return workload.NewAscending(n), nil
	case "zipf":
		return workload.NewZipf(int(n), 1.07, 0, seed), nil
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
}

func parseImpls(impls string) []string {
	if impls == "all" {
		return []string{"skiplist", "sortedvec"}
	}
	var toRun []string
	for _, impl := range strings.Split(impls, ",") {
		impl = strings.TrimSpace(impl)
		switch impl {
		case "skiplist", "sortedvec":
			toRun = append(toRun, impl)
		case "":
		default:
			log.Fatalf("unknown implementation %q", impl)
		}
	}
	if len(toRun) == 0 {
		log.Fatalf("no implementations selected")
	}
	return toRun
}

// generateOps materializes the whole op sequence up front so every
// implementation replays an identical workload.
func generateOps(stream workload.Stream, ops, writes int, seed int64) []benchOp {
	rng := rand.New(rand.NewSource(seed + 1))
	sequence := make([]benchOp, ops)
	for i := range sequence {
		op := benchOp{key: stream.Next()}
		if rng.Intn(100) < writes {
			if rng.Intn(2) == 0 {
				op.kind = opPut
				op.val = rng.Intn(1 << 16)
			} else {
				op.kind = opDelete
			}
		} else {
			op.kind = opGet
		}
		sequence[i] = op
	}
	return sequence
}

func runOnce(impl string, sequence []benchOp, maxLevel int, p float64) (time.Duration, error) {
	switch impl {
	case "skiplist":
		list, err := skiplist.New[int](skiplist.WithMaxLevel(maxLevel), skiplist.WithProbability(p))
		if err != nil {
			return 0, err
		}
		start := time.Now()
		for _, op := range sequence {
			switch op.kind {
			case opPut:
				_, _ = list.Put(op.key, op.val)
			case opGet:
				_, _ = list.Get(op.key)
			case opDelete:
				_, _ = list.Delete(op.key)
			}
		}
		return time.Since(start), nil
	case "sortedvec":
		m := newSortedMap()
		start := time.Now()
		for _, op := range sequence {
			switch op.kind {
			case opPut:
				_ = m.Put(op.key, op.val)
			case opGet:
				_, _ = m.Get(op.key)
			case opDelete:
				_ = m.Delete(op.key)
			}
		}
		return time.Since(start), nil
	default:
		return 0, fmt.Errorf("unknown implementation %q", impl)
	}
}

func summarize(impl string, runs, ops int, durations []time.Duration) []string {
	min, max := durations[0], durations[0]
	var total time.Duration
	for _, d := range durations {
		total += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	avg := total / time.Duration(len(durations))

	opsPerSec := 0.0
	if avg > 0 {
		opsPerSec = float64(ops) / avg.Seconds()
	}

	return []string{
		impl,
		fmt.Sprintf("%d", runs),
		fmt.Sprintf("%.3f", float64(avg.Microseconds())/1000),
		fmt.Sprintf("%.3f", float64(min.Microseconds())/1000),
		fmt.Sprintf("%.3f", float64(max.Microseconds())/1000),
		fmt.Sprintf("%.0f", opsPerSec),
	}
}
