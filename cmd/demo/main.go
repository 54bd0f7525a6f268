// Command demo exercises the two containers: it fills a skip list with
// hash-keyed words, prints its structure, runs the lookup and delete
// paths, and finishes with a vector round-trip.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/democonf"
	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/inspect"
	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/skiplist"
	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/vector"
	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/workload"
)

func main() {
	var confPath string
	flag.StringVar(&confPath, "conf", "demo.yaml", "path to demo configuration")
	flag.Parse()

	conf, err := democonf.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	list, err := skiplist.New[string](
		skiplist.WithMaxLevel(conf.SkiplistLevelMax),
		skiplist.WithProbability(conf.SkiplistP),
	)
	if err != nil {
		log.Fatalf("create skip list: %v", err)
	}

	keys := workload.WordKeys(conf.Words)
	for i, word := range conf.Words {
		list.Put(keys[i], word)
	}

	fmt.Printf("inserted %d words (max level %d, current level %d)\n\n",
		list.Len(), list.MaxLevel(), list.Level())

	inspect.Fprint(os.Stdout, list)
	fmt.Println()
	inspect.RenderTable(os.Stdout, list)
	fmt.Println()

	first := keys[0]
	if value, ok := list.Get(first); ok {
		fmt.Printf("search %d -> %q\n", first, value)
	}
	steps, _ := inspect.SearchCost(list, first)
	fmt.Printf("search cost for %d: %d steps\n", first, steps)

	if value, ok := list.Delete(first); ok {
		fmt.Printf("delete %d -> %q\n", first, value)
	}
	fmt.Printf("contains %d after delete: %t\n", first, list.Contains(first))
	fmt.Printf("size now %d\n\n", list.Len())

	fmt.Println("remaining words in key order:")
	list.ForEach(func(key int64, value string) bool {
		fmt.Printf("  %d -> %s\n", key, value)
		return true
	})
	fmt.Println()

	vec := vector.New[string](vector.WithCapacity(conf.VectorCapacity))
	for _, word := range conf.Words {
		vec.Push(word)
	}
	fmt.Printf("vector holds %d words (cap %d)\n", vec.Len(), vec.Cap())
	if word, ok := vec.Pop(); ok {
		fmt.Printf("popped %q, %d left\n", word, vec.Len())
	}
	vec.ForEach(func(i int, word string) bool {
		fmt.Printf("  [%d] %s\n", i, word)
		return true
	})
}
