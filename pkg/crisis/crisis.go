// Package crisis screens outbound chat text for self-harm language.
// It is a fixed-list substring gate: no stemming, no fuzzy matching.
// Paraphrased crisis language slipping through is a known limitation.
package crisis

import "strings"

// Keywords is the static phrase list. Matching is case-insensitive
// substring containment; any single hit triggers.
var Keywords = []string{
	"suicide", "kill myself", "end my life", "want to die", "hurt myself",
	"self harm", "cutting", "overdose", "jump off",
}

// Response is the fixed safety reply returned in place of a generated
// one. It is never randomized or templated.
const Response = "I'm really concerned about what you're sharing. Please know that you're not alone, and there are people who want to help. Please reach out to:\n\n🆘 National Suicide Prevention: 1-800-273-8255\n📞 Crisis Text Line: Text HOME to 741741\n🇮🇳 AASRA: +91-9820466726\n\nYour life matters, and things can get better with support."

// Alert is the banner text surfaced to the user when the gate triggers.
const Alert = "Crisis support resources are available. Your safety matters."

// Detect reports whether text contains any crisis phrase.
func Detect(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range Keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
