// Package internal holds iterator helpers shared by the m6502 packages.
package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Concat2 chains key/value sequences, in order, into one sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Sorted2 yields the entries of a map in key order.
func Sorted2[M ~map[K]V, K cmp.Ordered, V any](m M) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}
