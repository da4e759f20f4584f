// Package phrase builds phrases word by word:
//
//	phrase.Say().And("Hello").And("World").String() // "Hello World"
//
// Phrases are values; And returns a new phrase and leaves the receiver as
// it is.
package phrase

// Phrase is an accumulated sequence of words. The zero value is the empty
// phrase.
type Phrase struct {
	text string
}

// Say starts a phrase with the given words. Say() is the empty phrase.
func Say(words ...string) Phrase {
	var p Phrase
	for _, w := range words {
		p = p.And(w)
	}
	return p
}

// And appends word, separated by a single blank unless p is empty.
// Go strings cannot be absent; an empty word stands in for a missing one.
func (p Phrase) And(word string) Phrase {
	if p.text == "" {
		return Phrase{text: word}
	}
	return Phrase{text: p.text + " " + word}
}

func (p Phrase) String() string {
	return p.text
}
