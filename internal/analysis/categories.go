package analysis

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is one analysis dimension the agents know how to run.
type Category string

const (
	CategoryIssues Category = "issues"
	CategoryCode   Category = "code"
	CategoryTests  Category = "tests"
	CategoryDocs   Category = "docs"
	CategoryReview Category = "review"
)

// promptSection is one numbered block of a prompt. Its key doubles as
// the expected JSON field name, so the section order of each category is
// also the ordinal-to-category mapping used by the free-text parser.
type promptSection struct {
	key     string
	heading string
	bullets []string
}

type promptSpec struct {
	intro    string
	sections []promptSection
}

var promptSpecs = map[Category]promptSpec{
	CategoryIssues: {
		intro: "Analyze this GitHub repository and identify potential issues to report.",
		sections: []promptSection{
			{"code_quality", "Code Quality", []string{
				"Identify code style issues",
				"Suggest improvements",
				"Recommend best practices",
			}},
			{"documentation", "Documentation", []string{
				"Identify missing documentation",
				"Suggest documentation improvements",
				"Recommend documentation structure",
			}},
			{"testing", "Testing", []string{
				"Identify missing tests",
				"Suggest test improvements",
				"Recommend testing best practices",
			}},
			{"performance", "Performance", []string{
				"Identify performance bottlenecks",
				"Suggest optimization strategies",
				"Recommend benchmarking approaches",
			}},
		},
	},
	CategoryCode: {
		intro: "Analyze this GitHub repository's codebase and provide detailed analysis.",
		sections: []promptSection{
			{"code_quality", "Code Quality", []string{
				"Identify code style issues",
				"Suggest improvements",
				"Recommend best practices",
			}},
			{"architecture", "Architecture", []string{
				"Analyze code structure",
				"Identify architectural patterns",
				"Suggest architectural improvements",
			}},
			{"security", "Security", []string{
				"Identify security vulnerabilities",
				"Suggest security improvements",
				"Recommend security best practices",
			}},
			{"performance", "Performance", []string{
				"Analyze performance characteristics",
				"Identify bottlenecks",
				"Suggest optimization strategies",
			}},
		},
	},
	CategoryTests: {
		intro: "Analyze this GitHub repository's test suite and provide detailed analysis.",
		sections: []promptSection{
			{"test_coverage", "Test Coverage", []string{
				"Analyze code coverage",
				"Identify untested code paths",
				"Suggest additional tests",
			}},
			{"test_quality", "Test Quality", []string{
				"Analyze test quality",
				"Identify flaky tests",
				"Suggest test improvements",
			}},
			{"test_organization", "Test Organization", []string{
				"Analyze test organization",
				"Suggest better test structure",
				"Recommend test naming conventions",
			}},
			{"performance", "Performance", []string{
				"Analyze test performance",
				"Identify slow tests",
				"Suggest optimization strategies",
			}},
		},
	},
	CategoryDocs: {
		intro: "Analyze this GitHub repository's documentation and identify areas for improvement.",
		sections: []promptSection{
			{"api_docs", "API Documentation", []string{
				"Identify missing API documentation",
				"Suggest improvements to existing API docs",
				"Recommend documentation structure",
			}},
			{"user_guides", "User Guides", []string{
				"Identify missing user guides",
				"Suggest improvements to existing guides",
				"Recommend additional guides",
			}},
			{"examples", "Examples", []string{
				"Identify missing code examples",
				"Suggest improvements to existing examples",
				"Recommend new example scenarios",
			}},
			{"best_practices", "Best Practices", []string{
				"Identify missing best practices documentation",
				"Suggest improvements to existing best practices",
				"Recommend new best practices",
			}},
		},
	},
	CategoryReview: {
		intro: "Review this GitHub pull request and provide detailed review suggestions.",
		sections: []promptSection{
			{"code_changes", "Code Changes", []string{
				"Review code quality",
				"Suggest improvements",
				"Identify potential issues",
			}},
			{"testing", "Testing", []string{
				"Review test coverage",
				"Suggest additional tests",
				"Verify test quality",
			}},
			{"documentation", "Documentation", []string{
				"Review documentation changes",
				"Suggest documentation improvements",
				"Verify documentation completeness",
			}},
			{"performance", "Performance", []string{
				"Review performance implications",
				"Suggest optimizations",
				"Verify benchmarking",
			}},
		},
	},
}

// ParseCategory maps a request path segment to a known category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := promptSpecs[c]; !ok {
		return "", fmt.Errorf("unknown analysis category %q", s)
	}
	return c, nil
}

// Keys returns the expected response keys in prompt order.
func (c Category) Keys() []string {
	spec := promptSpecs[c]
	keys := make([]string, 0, len(spec.sections))
	for _, s := range spec.sections {
		keys = append(keys, s.key)
	}
	return keys
}

var titleCaser = cases.Title(language.English)

// Label renders a response key as a human readable label, e.g.
// "code_quality" becomes "Code Quality".
func Label(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}
