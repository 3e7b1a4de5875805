package parsing

// stopWords are common English function words dropped during tokenization.
// The table is read-only after package initialization.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "as": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "must": {}, "can": {},
	"shall": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {}, "you": {},
	"he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "me": {}, "him": {}, "her": {},
	"us": {}, "them": {}, "my": {}, "your": {}, "his": {}, "its": {}, "our": {},
	"their": {}, "from": {}, "up": {}, "about": {}, "into": {}, "over": {}, "after": {},
}

// IsStopWord reports whether word (already lower-cased) is a stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// StopWordCount returns the size of the stop-word table.
func StopWordCount() int {
	return len(stopWords)
}
