package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/persistent/sortedmap"
)

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

var normalize = fpset.Compose(trimPunct, strings.ToLower)

// CountWords counts the frequency of every word read from r. Words are compared
// case-insensitively, surrounding punctuation is dropped.
func CountWords(r io.Reader) (sortedmap.Map[string, int], error) {
	counts := sortedmap.Natural[string](sortedmap.Combine(func(x, y int) int {
		return x + y
	}))
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if word := normalize(scanner.Text()); word != "" {
			counts = counts.Put(word, 1)
		}
	}
	if err := scanner.Err(); err != nil {
		return counts, fmt.Errorf("cannot read input: %w", err)
	}
	return counts, nil
}
