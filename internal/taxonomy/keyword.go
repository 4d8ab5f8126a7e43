package taxonomy

import "strings"

// Categories assigned by the default classifier.
const (
	CategoryBeverages    = "Beverages"
	CategoryTobacco      = "Tobacco"
	CategorySnacks       = "Snacks"
	CategoryPersonalCare = "Personal Care"
)

type keywordRule struct {
	tokens   []string
	category string
}

// KeywordClassifier infers a category from substrings of the item name.
// Rules are checked in order; the first matching token wins.
type KeywordClassifier struct {
	rules []keywordRule
}

// Keyword returns the default sari-sari taxonomy. Callers with a product
// catalog can supply their own Classifier instead.
func Keyword() *KeywordClassifier {
	return &KeywordClassifier{rules: []keywordRule{
		{[]string{"coca", "pepsi", "sprite"}, CategoryBeverages},
		{[]string{"marlboro", "lucky", "philip"}, CategoryTobacco},
		{[]string{"pringles", "chips", "biscuit"}, CategorySnacks},
		{[]string{"shampoo", "soap", "cream"}, CategoryPersonalCare},
	}}
}

// WithRule appends a token set mapping to the given category and returns the
// classifier for chaining.
func (c *KeywordClassifier) WithRule(category string, tokens ...string) *KeywordClassifier {
	c.rules = append(c.rules, keywordRule{tokens: tokens, category: category})
	return c
}

func (c *KeywordClassifier) Classify(itemName string) (string, bool) {
	name := strings.ToLower(itemName)
	for _, r := range c.rules {
		for _, tok := range r.tokens {
			if strings.Contains(name, tok) {
				return r.category, true
			}
		}
	}
	return "", false
}
