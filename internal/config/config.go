// Package config holds the configuration of the exercises command.
//
// Configuration is read from an optional YAML file:
//
//	trace:
//	  level: debug
//	  keys: [exercises.bst, exercises.lines]
//	tree:
//	  style: outline
//
// Values not present in the file keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Trace TraceConfig `yaml:"trace"`
	Tree  TreeConfig  `yaml:"tree"`
}

// TraceConfig selects the trace level for a set of tracing keys.
type TraceConfig struct {
	Level string   `yaml:"level" validate:"oneof=error info debug"`
	Keys  []string `yaml:"keys" validate:"dive,required"`
}

// TreeConfig controls how search trees are printed.
type TreeConfig struct {
	Style string `yaml:"style" validate:"oneof=paren outline"`
}

// Tracing keys of the exercise packages.
var DefaultTraceKeys = []string{
	"exercises.bst",
	"exercises.lines",
	"exercises.seqs",
	"exercises.stack",
	"exercises.cli",
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Trace: TraceConfig{Level: "error", Keys: append([]string(nil), DefaultTraceKeys...)},
		Tree:  TreeConfig{Style: "paren"},
	}
}

// Load reads the YAML file at path on top of the defaults and validates the
// result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML data on top of the defaults and validates the result.
// Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks c against its constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}

var validate = validator.New()

// TraceLevel translates the configured level name.
func (t TraceConfig) TraceLevel() tracing.TraceLevel {
	return tracing.TraceLevelFromString(t.Level)
}

// Apply installs a global trace selector which writes to w. Tracers for the
// configured keys trace at the configured level, all other tracers at error
// level.
func (t TraceConfig) Apply(w io.Writer) {
	tracing.SetTraceSelector(t.Selector(w))
}

// Selector returns a trace selector handing out one Go-logger tracer per
// key, each writing to w.
func (t TraceConfig) Selector(w io.Writer) tracing.TraceSelector {
	sel := &traceSelector{
		out:     w,
		levels:  make(map[string]tracing.TraceLevel, len(t.Keys)),
		tracers: make(map[string]tracing.Trace),
	}
	level := t.TraceLevel()
	for _, key := range t.Keys {
		sel.levels[key] = level
	}
	return sel
}

type traceSelector struct {
	mx      sync.Mutex
	out     io.Writer
	levels  map[string]tracing.TraceLevel
	tracers map[string]tracing.Trace
}

func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mx.Lock()
	defer sel.mx.Unlock()
	if tr, ok := sel.tracers[key]; ok {
		return tr
	}
	tr := gologadapter.New()
	tr.SetOutput(sel.out)
	level, ok := sel.levels[key]
	if !ok {
		level = tracing.LevelError
	}
	tr.SetTraceLevel(level)
	sel.tracers[key] = tr
	return tr
}
