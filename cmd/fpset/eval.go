package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/persistent/avl"
)

// ErrUnknownSet is returned for expressions referencing a set which is neither
// defined in the document nor the result of an earlier expression.
var ErrUnknownSet = errors.New("unknown set")

// ErrUnknownOp is returned for unsupported set operations.
var ErrUnknownOp = errors.New("unknown operation")

// Evaluate computes every expression of doc and prints its result.
func Evaluate(doc *Document, w io.Writer) error {
	if doc.Numeric {
		return evaluate(doc, fpset.Natural[int](), strconv.Atoi, w)
	}
	return evaluate(doc, fpset.Natural[string](), func(s string) (string, error) {
		return s, nil
	}, w)
}

func evaluate[A any](doc *Document, order fpset.Order[A], parse func(string) (A, error), w io.Writer) error {
	env := make(map[string]avl.Tree[A], len(doc.Sets))
	for name, items := range doc.Sets {
		set, err := parseSet(order, parse, items)
		if err != nil {
			return fmt.Errorf("set %q: %w", name, err)
		}
		env[name] = set
	}
	for _, expr := range doc.Expressions {
		left, ok := env[expr.Left]
		if !ok {
			return fmt.Errorf("%w %q in %q", ErrUnknownSet, expr.Left, expr.Name)
		}
		right, ok := env[expr.Right]
		if !ok {
			return fmt.Errorf("%w %q in %q", ErrUnknownSet, expr.Right, expr.Name)
		}
		result, err := apply(expr.Op, left, right)
		if err != nil {
			return fmt.Errorf("%q: %w", expr.Name, err)
		}
		tracer().Infof("%s = %s", expr.Name, result)
		env[expr.Name] = result
		fmt.Fprintf(w, "%s = %s\n", expr.Name, result)
	}
	return nil
}

func parseSet[A any](order fpset.Order[A], parse func(string) (A, error), items []string) (avl.Tree[A], error) {
	values := make([]A, 0, len(items))
	for _, item := range items {
		v, err := parse(strings.TrimSpace(item))
		if err != nil {
			return avl.Tree[A]{}, err
		}
		values = append(values, v)
	}
	return avl.FromSequence(order, values), nil
}

func apply[A any](op string, left, right avl.Tree[A]) (avl.Tree[A], error) {
	switch strings.ToLower(op) {
	case "union", "|":
		return left.Union(right), nil
	case "intersect", "&":
		return left.Intersect(right), nil
	case "diff", "-":
		return left.Diff(right), nil
	}
	return avl.Tree[A]{}, fmt.Errorf("%w %q", ErrUnknownOp, op)
}
