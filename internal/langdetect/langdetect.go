// Package langdetect guesses the language of a text sample.
package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/guttosm/translate-service/internal/domain/model"
)

// minLetters is the smallest sample worth running detection on.
const minLetters = 6

// maxSample bounds the number of runes given to the detector.
const maxSample = 2000

// Detector reports the provider language code for a text, or "" when unsure.
type Detector interface {
	Detect(text string) string
}

// Lingua detects across the languages the provider supports.
type Lingua struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewLingua returns a lazily built detector. Models load on the first call.
func NewLingua() *Lingua {
	return &Lingua{}
}

// Detect returns the provider code of the detected language.
func (l *Lingua) Detect(text string) string {
	iso := DetectISO6391(l.get(), text)
	if iso == "" {
		return ""
	}
	code, ok := model.NormalizeLanguage(iso)
	if !ok {
		return ""
	}
	return code
}

func (l *Lingua) get() lingua.LanguageDetector {
	l.once.Do(func() {
		l.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supported...).
			WithLowAccuracyMode().
			Build()
	})
	return l.detector
}

// DetectISO6391 returns the lowercase ISO 639-1 code detected by d.
func DetectISO6391(d lingua.LanguageDetector, text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}
	if runes := []rune(sample); len(runes) > maxSample {
		sample = string(runes[:maxSample])
	}

	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < minLetters {
		return ""
	}

	language, ok := d.DetectLanguageOf(sample)
	if !ok {
		return ""
	}
	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

// Languages both lingua and the provider know.
var supported = []lingua.Language{
	lingua.Arabic,
	lingua.Bulgarian,
	lingua.Chinese,
	lingua.Czech,
	lingua.Danish,
	lingua.Dutch,
	lingua.English,
	lingua.Estonian,
	lingua.Finnish,
	lingua.French,
	lingua.German,
	lingua.Greek,
	lingua.Hungarian,
	lingua.Italian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Polish,
	lingua.Portuguese,
	lingua.Romanian,
	lingua.Russian,
	lingua.Slovene,
	lingua.Spanish,
	lingua.Swedish,
	lingua.Thai,
	lingua.Vietnamese,
}
