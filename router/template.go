package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/averen/relay/dispatch"
)

// segment is one slash-delimited element of a compiled path template:
// either a literal or a named variable with an optional validator.
type segment struct {
	literal string
	varName string
	pattern *regexp.Regexp // nil accepts any non-empty value
}

func (s segment) isVar() bool {
	return s.varName != ""
}

// template is a compiled path template.
type template struct {
	raw      string
	segments []segment
	numVars  int
}

// varNameRe restricts variable names so that a stray brace or colon in
// the name position is reported at registration time.
var varNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// parseTemplate compiles a path template. Templates must begin with a
// slash; variables are `{name}` or `{name:macro-or-regexp}` and must
// span a whole segment.
func parseTemplate(tpl string) (*template, error) {
	if !strings.HasPrefix(tpl, "/") {
		return nil, fmt.Errorf("router: path template must begin with a slash: %q", tpl)
	}

	parts := strings.Split(tpl[1:], "/")
	t := &template{
		raw:      tpl,
		segments: make([]segment, 0, len(parts)),
	}
	seen := make(map[string]struct{})

	for _, part := range parts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") && len(part) >= 2 {
			seg, err := parseVarSegment(part)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[seg.varName]; dup {
				return nil, fmt.Errorf("router: duplicated variable %q in template %q", seg.varName, tpl)
			}
			seen[seg.varName] = struct{}{}
			t.segments = append(t.segments, seg)
			t.numVars++
			continue
		}
		if strings.ContainsAny(part, "{}") {
			return nil, fmt.Errorf("router: variables must span a whole segment: %q in template %q", part, tpl)
		}
		t.segments = append(t.segments, segment{literal: part})
	}

	return t, nil
}

// parseVarSegment compiles one `{name}` or `{name:pattern}` segment.
// A known macro name after the colon resolves to its pre-compiled
// validator; anything else is compiled as a raw regular expression.
func parseVarSegment(part string) (segment, error) {
	inner := part[1 : len(part)-1]

	name, pattern, hasPattern := strings.Cut(inner, ":")
	if !varNameRe.MatchString(name) {
		return segment{}, fmt.Errorf("router: invalid variable name %q", name)
	}
	if !hasPattern {
		return segment{varName: name}, nil
	}
	if pattern == "" {
		return segment{}, fmt.Errorf("router: empty pattern for variable %q", name)
	}

	if re, ok := varPatterns[pattern]; ok {
		return segment{varName: name, pattern: re}, nil
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return segment{}, fmt.Errorf("router: invalid pattern for variable %q: %v", name, err)
	}
	return segment{varName: name, pattern: re}, nil
}

// match reports whether path matches the template, returning the
// captured variables. The path must already be parsed and cleaned.
func (t *template) match(path string) (dispatch.Params, bool) {
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}

	parts := strings.Split(path[1:], "/")
	if len(parts) != len(t.segments) {
		return nil, false
	}

	var params dispatch.Params
	for i, seg := range t.segments {
		value := parts[i]
		if !seg.isVar() {
			if value != seg.literal {
				return nil, false
			}
			continue
		}
		if value == "" {
			return nil, false
		}
		if seg.pattern != nil && !seg.pattern.MatchString(value) {
			return nil, false
		}
		if params == nil {
			params = make(dispatch.Params, t.numVars)
		}
		params[seg.varName] = value
	}

	return params, true
}
