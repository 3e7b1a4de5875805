package skills

import (
	"regexp"
	"strings"
)

// Term is one vocabulary entry. Pattern is the regular expression fragment
// used for matching; Name is how the term is displayed.
type Term struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// Category groups the vocabulary of one skill family.
type Category struct {
	Name  string `json:"name"`
	Terms []Term `json:"terms"`
}

func lit(name string) Term {
	return Term{Name: name, Pattern: regexp.QuoteMeta(name)}
}

func pat(name, pattern string) Term {
	return Term{Name: name, Pattern: pattern}
}

// vocabulary is evaluated in order. Within a category, earlier alternatives
// win over later ones at the same position, so longer names come first where
// they share a prefix (javascript before java).
var vocabulary = []Category{
	{
		Name: "languages",
		Terms: []Term{
			lit("javascript"), lit("typescript"), lit("python"), lit("java"),
			lit("c++"), lit("c#"), lit("ruby"), lit("php"), lit("swift"),
			lit("kotlin"), lit("go"), lit("rust"), lit("scala"), lit("r"),
			lit("matlab"),
		},
	},
	{
		Name: "frameworks",
		Terms: []Term{
			lit("react"), lit("angular"), lit("vue"), pat("node.js", `node\.?js`),
			lit("express"), lit("django"), lit("flask"), lit("spring"),
			lit("laravel"), lit("rails"), pat("next.js", `next\.?js`), lit("nuxt"),
		},
	},
	{
		Name: "databases",
		Terms: []Term{
			lit("mysql"), lit("postgresql"), lit("mongodb"), lit("redis"),
			lit("elasticsearch"), lit("oracle"), pat("sql server", `sql\s?server`),
			lit("sqlite"), lit("cassandra"),
		},
	},
	{
		Name: "cloud",
		Terms: []Term{
			lit("aws"), lit("azure"), lit("gcp"), lit("docker"), lit("kubernetes"),
			lit("jenkins"), lit("git"), lit("github"), lit("gitlab"),
			lit("bitbucket"), lit("terraform"), lit("ansible"),
		},
	},
	{
		Name: "general",
		Terms: []Term{
			lit("agile"), lit("scrum"), lit("kanban"), lit("leadership"),
			lit("management"), lit("communication"), lit("teamwork"),
			pat("problem solving", `problem\s?solving`),
		},
	},
	{
		Name: "tools",
		Terms: []Term{
			lit("jira"), lit("confluence"), lit("slack"), lit("figma"),
			lit("sketch"), lit("photoshop"), lit("illustrator"), lit("excel"),
			lit("powerpoint"), lit("word"),
		},
	},
}

// Categories returns a copy of the vocabulary table.
func Categories() []Category {
	out := make([]Category, len(vocabulary))
	for i, c := range vocabulary {
		terms := make([]Term, len(c.Terms))
		copy(terms, c.Terms)
		out[i] = Category{Name: c.Name, Terms: terms}
	}
	return out
}

// CategoryByName looks up a category case-insensitively.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// compile builds the case-insensitive, word-bounded pattern for a category.
func (c Category) compile() (*regexp.Regexp, error) {
	alternatives := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		alternatives[i] = t.Pattern
	}
	return regexp.Compile(`(?i)\b(` + strings.Join(alternatives, "|") + `)\b`)
}
