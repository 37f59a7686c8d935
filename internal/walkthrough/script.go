// File: internal/walkthrough/script.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// YAML walkthrough scripts driving the demonstration programs.

package walkthrough

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-seq/api"
)

//go:embed default.yaml
var defaultScript []byte

// Scratch provider names accepted by Script.Scratch.
const (
	ScratchArena    = "arena"
	ScratchHeap     = "heap"
	ScratchRecycler = "recycler"
)

// Script describes containers to build and the operations to apply.
type Script struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
	Bits     int    `yaml:"bits"`
	// Scratch selects the merge-sort provider; empty means arena.
	Scratch string `yaml:"scratch"`
	// ScratchLimit caps merge-sort leases in elements; 0 means the
	// container capacity.
	ScratchLimit int    `yaml:"scratch_limit"`
	Steps        []Step `yaml:"steps"`
}

// Step is one operation. Fields not used by Op are ignored.
type Step struct {
	Op     string  `yaml:"op"`
	Value  int64   `yaml:"value"`
	Values []int64 `yaml:"values"`
	Index  int     `yaml:"index"`
	Lo     *int    `yaml:"lo"`
	Hi     *int    `yaml:"hi"`
	N      int     `yaml:"n"`
}

// Default returns the embedded walkthrough script.
func Default() (*Script, error) {
	return Parse(defaultScript)
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "walkthrough: read %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "walkthrough: %s", path)
	}
	return s, nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "walkthrough: decode script")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks sizes, the scratch provider and that every op is known.
func (s *Script) Validate() error {
	if s.Capacity < 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "walkthrough: capacity %d", s.Capacity)
	}
	if s.Bits < 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "walkthrough: bits %d", s.Bits)
	}
	if s.ScratchLimit < 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "walkthrough: scratch_limit %d", s.ScratchLimit)
	}
	switch s.Scratch {
	case "", ScratchArena, ScratchHeap, ScratchRecycler:
	default:
		return errors.Wrapf(api.ErrNotSupported, "walkthrough: scratch provider %q", s.Scratch)
	}
	for i, st := range s.Steps {
		if _, ok := handlers[st.Op]; !ok {
			return errors.Wrapf(api.ErrNotSupported, "walkthrough: step %d (%s)", i+1, st.Op)
		}
	}
	return nil
}
