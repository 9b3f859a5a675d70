package igt

import (
	"regexp"
	"strings"
)

var (
	strongPunct   = regexp.MustCompile(`[!?\[\];:"/.(),]`)
	weakPunct     = regexp.MustCompile("[=|$¿¡]")
	tildeRe       = regexp.MustCompile("[~˜]")
	spaceCollapse = regexp.MustCompile(` +`)
)

// PreprocessTranslation normalizes a free translation for annotation
// and candidate lookup: lowercase, punctuation stripped, apostrophe
// spacing removed, whitespace collapsed. keepTilde leaves tildes in
// place for languages where they are orthographic.
func PreprocessTranslation(text string, keepTilde bool) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strongPunct.ReplaceAllString(t, " ")
	t = weakPunct.ReplaceAllString(t, " ")
	if !keepTilde {
		t = tildeRe.ReplaceAllString(t, " ")
	}
	t = strings.ReplaceAll(t, "--", " ")
	t = strings.ReplaceAll(t, " - ", " ")
	t = strings.ReplaceAll(t, " ' ", " ")
	t = strings.ReplaceAll(t, " '", " ")
	t = strings.ReplaceAll(t, "’", "'")
	t = strings.ReplaceAll(t, "“", " ")
	t = strings.ReplaceAll(t, "”", " ")
	t = spaceCollapse.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// PreprocessAll normalizes every translation tier in place.
func PreprocessAll(c *Corpus, keepTilde bool) {
	for i := range c.Sentences {
		c.Sentences[i].Translation = PreprocessTranslation(c.Sentences[i].Translation, keepTilde)
	}
}
