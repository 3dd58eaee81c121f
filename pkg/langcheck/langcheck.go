// Package langcheck verifies the language of downloaded artifacts.
// The index annotations are hand-maintained, so a post-download spot
// check catches entries whose marker was wrong or whose candidate file
// turned out to be a different edition.
package langcheck

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Checker detects the dominant language of text samples.
type Checker struct {
	detector lingua.LanguageDetector
}

// NewChecker builds a detector restricted to the languages that
// actually occur in the archive's major collections; a small candidate
// set keeps detection accurate on short samples.
func NewChecker() *Checker {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Dutch,
	}
	return &Checker{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the detected language name for a text sample.
func (c *Checker) Detect(text string) (string, error) {
	lang, ok := c.detector.DetectLanguageOf(text)
	if !ok {
		return "", fmt.Errorf("language could not be determined")
	}
	return lang.String(), nil
}

// Matches reports whether the sample is in the expected language and
// returns what was detected. Names compare case-insensitively.
func (c *Checker) Matches(text, expected string) (bool, string, error) {
	detected, err := c.Detect(text)
	if err != nil {
		return false, "", err
	}
	return strings.EqualFold(detected, expected), detected, nil
}
