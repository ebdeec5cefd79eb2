// Package routefile loads a declarative route table from a YAML
// document and registers it against a router.
//
// Document shape:
//
//	routes:
//	  - name: widget-get
//	    path: /widgets/{id:int}
//	    methods: [GET]
//	    endpoint: widgets.get
//
// Endpoint names are bound to dispatch.Endpoint values at apply time,
// keeping the file free of code references.
package routefile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/averen/relay/dispatch"
	"github.com/averen/relay/router"
)

// File is the top-level route-table document.
type File struct {
	Routes []Entry `yaml:"routes"`
}

// Entry declares one route rule.
type Entry struct {
	// Name optionally names the rule for lookup and diagnostics.
	Name string `yaml:"name"`

	// Path is the rule's path template.
	Path string `yaml:"path"`

	// Methods restricts the rule to the given method tokens.
	// Empty allows any method.
	Methods []string `yaml:"methods"`

	// Endpoint names the handler to bind; it must be present in the
	// endpoint set passed to Apply.
	Endpoint string `yaml:"endpoint"`
}

// label identifies the entry in error messages.
func (e Entry) label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Path
}

// Parse decodes a route-table document. Unknown fields are rejected so
// that typos in the file surface as errors instead of silently dropped
// configuration.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("routefile: decode: %w", err)
	}
	return &f, nil
}

// Load reads and parses a route-table file from disk.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Apply registers every entry on the router, binding endpoint names to
// the given endpoints. Entries are validated up front; the router is
// not modified when validation fails.
func (f *File) Apply(rt *router.Router, endpoints map[string]dispatch.Endpoint) error {
	for _, e := range f.Routes {
		if e.Path == "" {
			return fmt.Errorf("routefile: route %q: path is required", e.label())
		}
		if e.Endpoint == "" {
			return fmt.Errorf("routefile: route %q: endpoint is required", e.label())
		}
		if _, ok := endpoints[e.Endpoint]; !ok {
			return fmt.Errorf("routefile: route %q: unknown endpoint %q", e.label(), e.Endpoint)
		}
	}

	for _, e := range f.Routes {
		rule := rt.Handle(e.Path, endpoints[e.Endpoint])
		if len(e.Methods) > 0 {
			rule.Methods(e.Methods...)
		}
		if e.Name != "" {
			rule.Name(e.Name)
		}
		if err := rule.GetError(); err != nil {
			return fmt.Errorf("routefile: route %q: %w", e.label(), err)
		}
	}
	return nil
}
