// Package lookup is the offline dictionary the host shell consults before
// recording a translation. It never fails: a miss is reported through
// Result.Found with a readable placeholder text.
package lookup

import (
	_ "embed"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/globallingo/lingo/internal/app/progression"
	"github.com/globallingo/lingo/internal/domain"
)

//go:embed phrases.toml
var embeddedPhrases []byte

// Result is the outcome of a lookup.
type Result struct {
	Text  string `json:"text"`
	Found bool   `json:"found"`
}

type phraseFile struct {
	Phrases map[string]map[string]string `toml:"phrases"`
}

// Dictionary is an immutable phrase table. Safe for concurrent use.
type Dictionary struct {
	phrases map[string]map[domain.LanguageCode]string
	byLen   []string // phrase keys, longest first
}

// New loads the embedded phrase table.
func New() (*Dictionary, error) {
	return Parse(embeddedPhrases)
}

// MustNew is New for package-level wiring; the embedded table is part of
// the binary, so a parse failure is a build defect.
func MustNew() *Dictionary {
	d, err := New()
	if err != nil {
		panic(err)
	}
	return d
}

// Parse builds a dictionary from TOML of the form
//
//	[phrases."thank you"]
//	es = "gracias"
func Parse(data []byte) (*Dictionary, error) {
	var file phraseFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("decode phrase table: %w", err)
	}

	d := &Dictionary{
		phrases: make(map[string]map[domain.LanguageCode]string, len(file.Phrases)),
	}
	for phrase, targets := range file.Phrases {
		key := normalize(phrase)
		if key == "" {
			return nil, fmt.Errorf("phrase table: blank phrase")
		}
		m := make(map[domain.LanguageCode]string, len(targets))
		for code, text := range targets {
			if _, err := language.ParseBase(code); err != nil {
				return nil, fmt.Errorf("phrase %q: bad language code %q: %w", phrase, code, err)
			}
			if !progression.IsKnownLanguage(domain.LanguageCode(code)) {
				return nil, fmt.Errorf("phrase %q: language %q is not in the catalog", phrase, code)
			}
			m[domain.LanguageCode(code)] = text
		}
		d.phrases[key] = m
		d.byLen = append(d.byLen, key)
	}

	sort.Slice(d.byLen, func(i, j int) bool {
		a, b := d.byLen[i], d.byLen[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return d, nil
}

// Len returns the number of phrases in the table.
func (d *Dictionary) Len() int { return len(d.phrases) }

// Translate looks text up for the target language: an exact phrase match
// first, then the longest table phrase contained in text as whole words.
// A miss yields "<text> (in <Language>)" with Found=false.
func (d *Dictionary) Translate(text string, to domain.LanguageCode) Result {
	key := normalize(text)

	if out, ok := d.phrases[key][to]; ok {
		return Result{Text: out, Found: true}
	}

	padded := " " + words(key) + " "
	for _, phrase := range d.byLen {
		out, ok := d.phrases[phrase][to]
		if ok && strings.Contains(padded, " "+phrase+" ") {
			return Result{Text: out, Found: true}
		}
	}

	return Result{
		Text:  fmt.Sprintf("%s (in %s)", strings.TrimSpace(text), progression.LanguageName(to)),
		Found: false,
	}
}

// normalize case-folds s and collapses whitespace. A Caser holds state,
// so each call builds its own.
func normalize(s string) string {
	return strings.Join(strings.Fields(cases.Fold().String(s)), " ")
}

// words strips punctuation around each word so "hello, friend!" matches
// both "hello" and "friend".
func words(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.TrimFunc(f, unicode.IsPunct)
	}
	return strings.Join(fields, " ")
}

// ─── Quips ──────────────────────────────────────────────────────────────────

var quips = []string{
	`I tried to say "%[1]s" in another language, but my tongue did a 360° spin and now I speak fluent "%[2]s"!`,
	`Why did "%[1]s" cross the language barrier? To become "%[2]s" on the other side!`,
	`"%[1]s" walked into a multilingual bar and came out as "%[2]s". The bartender said, "That's the spirit!"`,
	`They say "%[1]s" is universal, but "%[2]s" is universally cooler with 43%% more vowels!`,
	`If "%[1]s" and "%[2]s" had a rap battle, the dictionary would surrender.`,
	`Breaking: Local word "%[1]s" discovers it has an alter ego named "%[2]s". Identity crisis ensues.`,
	`"%[1]s" isn't just a word, it's a lifestyle. "%[2]s" is that lifestyle in pajamas.`,
	`Scientists confirm: saying "%[2]s" instead of "%[1]s" makes you 78%% more internationally sophisticated!`,
}

// Quip returns a joke line about a translation. A nil rng uses the global
// source.
func Quip(original, translated string, rng *rand.Rand) string {
	var i int
	if rng != nil {
		i = rng.Intn(len(quips))
	} else {
		i = rand.Intn(len(quips))
	}
	return fmt.Sprintf(quips[i], original, translated)
}
