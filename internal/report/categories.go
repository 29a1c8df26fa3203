package report

import (
	"unicode"

	"github.com/retroenv/retrogolib/set"
)

// Category is a section of the report.
type Category int

// Categories of the report in output order.
const (
	CategoryRegisters Category = iota
	CategoryVariables
	CategoryOS
)

var categoryNames = map[Category]string{
	CategoryRegisters: "registers",
	CategoryVariables: "variables",
	CategoryOS:        "os",
}

func (c Category) String() string {
	return categoryNames[c]
}

// Categories is the set of selected report categories.
type Categories = set.Set[Category]

// AllCategories returns a set containing all categories.
func AllCategories() Categories {
	cats := set.New[Category]()
	cats.Add(CategoryRegisters)
	cats.Add(CategoryVariables)
	cats.Add(CategoryOS)
	return cats
}

var topicLetters = map[rune]Category{
	'r': CategoryRegisters,
	'v': CategoryVariables,
	'o': CategoryOS,
}

// ParseTopics parses a topic selection like "rvo", the letters are case
// insensitive. It returns the selected categories and all letters that do not
// name a topic. If no valid letter is given, all categories are selected.
func ParseTopics(topics string) (Categories, []rune) {
	cats := set.New[Category]()
	var unknown []rune

	for _, r := range topics {
		cat, ok := topicLetters[unicode.ToLower(r)]
		if !ok {
			unknown = append(unknown, r)
			continue
		}
		cats.Add(cat)
	}

	if len(cats) == 0 {
		return AllCategories(), unknown
	}
	return cats, unknown
}
