// Package treespec loads declarative component-tree manifests from YAML.
//
// A manifest describes a keyed tree of components with their props:
//
//	key: app
//	props:
//	  title: Inbox
//	children:
//	  - key: header
//	  - key: body
//	    children:
//	      - key: row-1
//
// Build instantiates the manifest through a caller-supplied Factory, so the
// manifest stays free of concrete component types.
package treespec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-frond/frond/pkg/component"
	"github.com/go-frond/frond/pkg/errors"
)

// Spec is one node of a component-tree manifest.
type Spec struct {
	Key      string         `yaml:"key"`
	Props    map[string]any `yaml:"props,omitempty"`
	Children []*Spec        `yaml:"children,omitempty"`
}

// Factory instantiates the concrete component for one manifest node.
// It is called once per node, parents before children.
type Factory func(key string, props component.Props) component.Component

// Parse decodes a manifest from YAML. Unknown fields, empty keys, and
// duplicate sibling keys are rejected.
func Parse(data []byte) (*Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("empty manifest")
		}
		return nil, parseError("treespec.Parse", err)
	}
	if err := spec.validate(); err != nil {
		return nil, parseError("treespec.Parse", err)
	}
	return &spec, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, parseError("treespec.Load", err)
	}
	return Parse(data)
}

func parseError(op string, err error) *errors.Error {
	return &errors.Error{
		Op:        op,
		Kind:      errors.KindParsing,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// validate checks the manifest invariants that the component tree enforces
// structurally: every node has a key, and sibling keys are unique.
func (s *Spec) validate() error {
	if s.Key == "" {
		return fmt.Errorf("manifest node without a key")
	}
	seen := make(map[string]bool, len(s.Children))
	for _, child := range s.Children {
		if child == nil {
			return fmt.Errorf("node %q: nil child entry", s.Key)
		}
		if seen[child.Key] {
			return fmt.Errorf("node %q: duplicate child key %q", s.Key, child.Key)
		}
		seen[child.Key] = true
		if err := child.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Build instantiates the manifest depth-first through factory, attaching
// children via the component tree's keyed insert path. The factory returning
// nil for a node is an error; a panicking factory is recovered and reported
// as a structured error instead of unwinding through a half-built tree.
func (s *Spec) Build(factory Factory) (component.Component, error) {
	if err := s.validate(); err != nil {
		return nil, parseError("treespec.Build", err)
	}
	return s.build(factory)
}

func (s *Spec) build(factory Factory) (component.Component, error) {
	node, err := s.instantiate(factory)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, parseError("treespec.Build", fmt.Errorf("factory returned nil for key %q", s.Key))
	}
	for _, childSpec := range s.Children {
		child, err := childSpec.build(factory)
		if err != nil {
			return nil, err
		}
		node.Base().AddChild(child)
	}
	return node, nil
}

// instantiate calls the factory for one manifest node, converting a panic
// into a *errors.Error carrying the panic value and its stack.
func (s *Spec) instantiate(factory Factory) (node component.Component, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.Error{
				Op:   "treespec.Build",
				Kind: errors.KindPanic,
				Err: &errors.PanicError{
					Op:         fmt.Sprintf("factory for key %q", s.Key),
					Value:      r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				},
				Timestamp: time.Now(),
			}
		}
	}()
	return factory(s.Key, component.Props(s.Props)), nil
}

// Encode serializes a live component tree back into manifest YAML, props
// included. The inverse of Build for trees whose props survive YAML.
func Encode(root component.Component) ([]byte, error) {
	data, err := yaml.Marshal(fromComponent(root))
	if err != nil {
		return nil, parseError("treespec.Encode", err)
	}
	return data, nil
}

func fromComponent(c component.Component) *Spec {
	spec := &Spec{
		Key:   c.Key(),
		Props: map[string]any(c.Base().Props()),
	}
	c.Base().VisitChildren(func(child component.Component) bool {
		spec.Children = append(spec.Children, fromComponent(child))
		return true
	})
	return spec
}
