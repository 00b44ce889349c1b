// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analysis

import "sort"

// FreqItem is a single row of a ranked frequency table.
type FreqItem struct {
	Value string
	Count int
}

// freqTable counts occurrences of string values while remembering
// in which order the values were first seen. The ranking is by
// count (descending) with ties resolved by first occurrence, so
// repeated runs over the same file always produce the same tables.
type freqTable struct {
	counts map[string]int
	order  []string
}

func newFreqTable() *freqTable {
	return &freqTable{
		counts: make(map[string]int),
	}
}

func (ft *freqTable) Incr(v string) {
	if _, ok := ft.counts[v]; !ok {
		ft.order = append(ft.order, v)
	}
	ft.counts[v]++
}

func (ft *freqTable) Size() int {
	return len(ft.order)
}

// Ranked returns at most limit items sorted by descending count.
// A non-positive limit returns the whole table.
func (ft *freqTable) Ranked(limit int) []FreqItem {
	ans := make([]FreqItem, len(ft.order))
	for i, v := range ft.order {
		ans[i] = FreqItem{Value: v, Count: ft.counts[v]}
	}
	sort.SliceStable(ans, func(i, j int) bool {
		return ans[i].Count > ans[j].Count
	})
	if limit > 0 && len(ans) > limit {
		ans = ans[:limit]
	}
	return ans
}
