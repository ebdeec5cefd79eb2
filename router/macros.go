package router

import "regexp"

// varPatterns maps macro names usable in {name:macro} segments to
// pre-compiled validators. An unknown name falls through to raw regexp
// compilation in parseTemplate.
var varPatterns = map[string]*regexp.Regexp{
	"uuid":     regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
	"int":      regexp.MustCompile(`^[0-9]+$`),
	"float":    regexp.MustCompile(`^[0-9]*\.?[0-9]+$`),
	"slug":     regexp.MustCompile(`^[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*$`),
	"alpha":    regexp.MustCompile(`^[a-zA-Z]+$`),
	"alphanum": regexp.MustCompile(`^[a-zA-Z0-9]+$`),
	"date":     regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`),
	"hex":      regexp.MustCompile(`^[0-9a-fA-F]+$`),
}
