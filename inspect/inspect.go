// Package inspect provides read-only printing and search-cost analysis
// over skip lists. Nothing here participates in the list's correctness
// contract; everything works through the exported node accessors.
package inspect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/skiplist"
)

// Fprint writes the list's structure to w, one row per occupied level
// from the top down. Cells are aligned with the level-1 chain so the
// towers line up:
//
//	level 3 :       9 ->
//	level 2 :       9 ->  17 ->
//	level 1 :  5 ->  9 ->  17 ->
func Fprint[V any](w io.Writer, list *skiplist.SkipList[V]) {
	if list.IsEmpty() {
		fmt.Fprintln(w, "skip list is empty")
		return
	}

	top := list.Level()
	rows := make([]string, top+1)
	for lvl := top; lvl >= 1; lvl-- {
		rows[lvl] = fmt.Sprintf("level %d : ", lvl)
	}

	for n := list.Head().Next(); n != nil; n = n.Next() {
		for lvl := top; lvl >= 1; lvl-- {
			if lvl <= n.Height() {
				rows[lvl] += fmt.Sprintf("%3d ->", n.Key())
			} else {
				rows[lvl] += "      "
			}
		}
	}

	for lvl := top; lvl >= 1; lvl-- {
		fmt.Fprintln(w, rows[lvl])
	}
}

// Levels returns the number of nodes present per level, indexed from
// level 1 at position 0 up to the list's current level.
func Levels[V any](list *skiplist.SkipList[V]) []int {
	counts := make([]int, list.Level())
	for lvl := 1; lvl <= list.Level(); lvl++ {
		for n := list.Head().NextAt(lvl); n != nil; n = n.NextAt(lvl) {
			counts[lvl-1]++
		}
	}
	return counts
}

// RenderTable writes a per-level summary table (node count, first and
// last key) to w.
func RenderTable[V any](w io.Writer, list *skiplist.SkipList[V]) {
	rows := make([][]string, 0, list.Level())
	for lvl := list.Level(); lvl >= 1; lvl-- {
		count := 0
		var first, last *skiplist.Node[V]
		for n := list.Head().NextAt(lvl); n != nil; n = n.NextAt(lvl) {
			if first == nil {
				first = n
			}
			last = n
			count++
		}

		firstCell, lastCell := "-", "-"
		if first != nil {
			firstCell = strconv.FormatInt(first.Key(), 10)
			lastCell = strconv.FormatInt(last.Key(), 10)
		}
		rows = append(rows, []string{
			strconv.Itoa(lvl),
			strconv.Itoa(count),
			firstCell,
			lastCell,
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Nodes", "First", "Last"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// SearchCost runs the standard descent for key and returns the total
// number of steps taken plus the per-level breakdown (indexed from
// level 1 at position 0). Horizontal moves and level drops each count
// as one step. The list is not mutated.
func SearchCost[V any](list *skiplist.SkipList[V], key int64) (int, []int) {
	perLevel := make([]int, list.Level())
	total := 0

	cur := list.Head()
	for lvl := list.Level(); lvl >= 1; lvl-- {
		steps := 0
		for next := cur.NextAt(lvl); next != nil && next.Key() < key; next = cur.NextAt(lvl) {
			cur = next
			steps++
		}

		if next := cur.NextAt(lvl); next != nil && next.Key() == key {
			perLevel[lvl-1] = steps + 1
			total += steps + 1
			return total, perLevel
		}

		perLevel[lvl-1] = steps
		total += steps + 1
	}

	return total, perLevel
}
