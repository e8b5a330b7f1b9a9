package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveQuery(t *testing.T) {
	const bing = "https://www.bing.com/search?q="

	tests := []struct {
		name     string
		input    string
		engine   string
		expected string
	}{
		{name: "blank", input: "   ", expected: ""},
		{name: "https url", input: "https://go.dev/doc", expected: "https://go.dev/doc"},
		{name: "http url mixed case", input: "HTTP://example.com", expected: "HTTP://example.com"},
		{name: "bare host", input: "github.com", expected: "https://github.com"},
		{name: "trimmed", input: "  pkg.go.dev  ", expected: "https://pkg.go.dev"},
		{name: "words", input: "go modules", expected: bing + "go%20modules"},
		{name: "literal plus", input: "c++ templates", expected: bing + "c%2B%2B%20templates"},
		{name: "escaped", input: "a&b", expected: bing + "a%26b"},
		{name: "query in path", input: "go modules", engine: "https://search.example.com/", expected: "https://search.example.com/go%20modules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := tt.engine
			if engine == "" {
				engine = bing
			}
			assert.Equal(t, tt.expected, ResolveQuery(tt.input, engine))
		})
	}
}
