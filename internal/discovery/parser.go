package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Parser parses test modules to extract test methods
type Parser struct {
	pattern *regexp.Regexp
}

// NewParser creates a new Parser
func NewParser() *Parser {
	// Matches both methods and module level functions:
	// - def test_example(self):
	// - async def test_fetch(self):
	//     def test_touch_draw(self, *args):
	return &Parser{
		pattern: regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?def[ \t]+(test\w*)[ \t]*\(`),
	}
}

// FindTestCases finds all test methods in a test module
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	found := make(map[string]bool)
	for _, match := range p.pattern.FindAllStringSubmatch(string(content), -1) {
		if len(match) > 1 {
			found[match[1]] = true
		}
	}

	testCases := make([]string, 0, len(found))
	for name := range found {
		testCases = append(testCases, name)
	}
	sort.Strings(testCases)

	return testCases, nil
}
