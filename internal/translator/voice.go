package translator

import (
	"regexp"
	"strconv"
	"strings"
)

// Voice parsing is a lexical heuristic, not NLU: it looks for a dollar
// figure, then for spelled-out numbers, then for "to <merchant>".
var (
	dollarSignPattern   = regexp.MustCompile(`\$\s?(\d+(?:\.\d{1,2})?)`)
	dollarSuffixPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d{1,2})?)\s*(?:dollars?|bucks|usd)\b`)
	wordPattern         = regexp.MustCompile(`[a-z]+`)
	toPattern           = regexp.MustCompile(`(?i)\bto\s+`)
	forPattern          = regexp.MustCompile(`(?i)\s+for\b`)
	nonMerchantChars    = regexp.MustCompile(`[^a-z0-9_]+`)
)

var numberWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// parseVoiceAmount returns the amount and the byte offset where the amount
// expression ends in the transcript.
func parseVoiceAmount(transcript string) (float64, int, bool) {
	for _, pattern := range []*regexp.Regexp{dollarSignPattern, dollarSuffixPattern} {
		if m := pattern.FindStringSubmatchIndex(transcript); m != nil {
			amount, err := strconv.ParseFloat(transcript[m[2]:m[3]], 64)
			if err == nil {
				return amount, m[1], true
			}
		}
	}
	return parseNumberWords(strings.ToLower(transcript))
}

// parseNumberWords reads the first run of number words, e.g. "two hundred
// fifty" -> 250. Values past the hundreds are not supported.
func parseNumberWords(lower string) (float64, int, bool) {
	var total float64
	started := false
	end := 0
	for _, loc := range wordPattern.FindAllStringIndex(lower, -1) {
		word := lower[loc[0]:loc[1]]
		switch {
		case word == "hundred":
			if total == 0 {
				total = 1
			}
			total *= 100
		case word == "and" && started:
			continue
		default:
			value, ok := numberWords[word]
			if !ok {
				if started {
					return total, end, true
				}
				continue
			}
			total += value
		}
		started = true
		end = loc[1]
	}
	return total, end, started
}

// parseVoiceMerchant extracts "to <merchant> (for ...|end)", preferring the
// first "to" after the amount so "I want to pay ten dollars to Uber" finds
// Uber. The merchant is lower-cased with spaces turned into underscores.
func parseVoiceMerchant(transcript string, after int) string {
	matches := toPattern.FindAllStringIndex(transcript, -1)
	for _, pass := range []bool{true, false} {
		for _, m := range matches {
			if pass && m[0] < after {
				continue
			}
			if merchant := merchantFrom(transcript[m[1]:]); merchant != "" {
				return merchant
			}
		}
	}
	return ""
}

func merchantFrom(rest string) string {
	if loc := forPattern.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	rest = strings.ToLower(strings.TrimSpace(rest))
	rest = strings.Join(strings.Fields(rest), "_")
	return strings.Trim(nonMerchantChars.ReplaceAllString(rest, ""), "_")
}
