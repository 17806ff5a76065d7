package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document describes named sets and a list of expressions over them:
//
//	numeric: true
//	sets:
//	  a: [1, 2, 3]
//	  b: [2, 3, 4]
//	expressions:
//	  - { name: u, op: union, left: a, right: b }
//	  - { name: d, op: diff, left: u, right: b }
//
// Every expression result is bound to its name and may be referenced by later
// expressions.
type Document struct {
	Numeric     bool                `yaml:"numeric"`
	Sets        map[string][]string `yaml:"sets"`
	Expressions []Expression        `yaml:"expressions"`
}

// Expression combines two named sets.
type Expression struct {
	Name  string `yaml:"name"`
	Op    string `yaml:"op"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// LoadDocument reads a YAML document from a file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read document: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes a YAML document and checks that every expression is complete.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse document: %w", err)
	}
	for i, expr := range doc.Expressions {
		if expr.Op == "" || expr.Left == "" || expr.Right == "" {
			return nil, fmt.Errorf("expression #%d is incomplete: needs op, left and right", i+1)
		}
		if expr.Name == "" {
			doc.Expressions[i].Name = fmt.Sprintf("%s %s %s", expr.Left, expr.Op, expr.Right)
		}
	}
	tracer().Debugf("document with %d sets and %d expressions", len(doc.Sets), len(doc.Expressions))
	return &doc, nil
}
