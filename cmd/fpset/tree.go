package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/fpset"
)

// PrintTree builds a set from items, removes removals from it and prints both the
// set and its tree structure.
func PrintTree(w io.Writer, items, removals []string, numeric bool) error {
	if numeric {
		return printTree(w, fpset.Natural[int](), strconv.Atoi, items, removals)
	}
	return printTree(w, fpset.Natural[string](), func(s string) (string, error) {
		return s, nil
	}, items, removals)
}

func printTree[A any](w io.Writer, order fpset.Order[A], parse func(string) (A, error),
	items, removals []string) error {
	//
	set, err := parseSet(order, parse, items)
	if err != nil {
		return fmt.Errorf("cannot build set: %w", err)
	}
	gone, err := parseSet(order, parse, removals)
	if err != nil {
		return fmt.Errorf("cannot build removals: %w", err)
	}
	set = set.Diff(gone)
	if err := set.Check(); err != nil {
		return err
	}
	fmt.Fprintln(w, set)
	fmt.Fprint(w, set.Dump())
	return nil
}
