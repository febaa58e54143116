package service

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// questionStopWords is the small skip list used when mining keywords from a
// context. It is configuration data, separate from the larger embedding stop
// list, so keyword selection can be tuned independently.
var questionStopWords = newStringSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by",
)

// questionTemplates are the framings used to turn a mined keyword into a
// question. Each has exactly one insertion point for the keyword.
var questionTemplates = []string{
	// Definition / concept
	"What is %s and why is it important?",
	"How would you define or explain %s?",
	// Process / method
	"What is the process or method involving %s?",
	"How does %s work or function?",
	// Relationship
	"What is the relationship between %s and other concepts mentioned?",
	"How does %s relate to the overall topic?",
	// Analysis
	"What are the key characteristics or features of %s?",
	"What factors influence or affect %s?",
	// Application
	"How is %s applied or used in practice?",
	"What are the implications or consequences of %s?",
}

// fallbackQuestions are used when a context yields no usable keyword.
var fallbackQuestions = []string{
	"What is the main concept discussed in this passage?",
	"What are the key points presented in this text?",
	"How would you summarize the main ideas in this passage?",
	"What is the significance of the information presented here?",
	"What conclusions can be drawn from this passage?",
}

// synthesizeQuestion builds a natural-language question about the context.
// A keyword qualifies when it is longer than three characters, not a stop
// word, and either capitalized or digit-bearing; one keyword and one template
// are picked uniformly at random from the supplied source. Contexts under
// five words, or without keywords, fall back to a generic question.
func synthesizeQuestion(contextText string, rng *rand.Rand) string {
	words := strings.Fields(contextText)
	if len(words) < 5 {
		return fallbackQuestions[rng.Intn(len(fallbackQuestions))]
	}

	var keywords []string
	for _, word := range words {
		trimmed := strings.Trim(word, ".,!?;:\"'()[]{}")
		if utf8.RuneCountInString(trimmed) <= 3 {
			continue
		}
		if _, stop := questionStopWords[strings.ToLower(trimmed)]; stop {
			continue
		}
		if isCapitalized(trimmed) || containsDigit(trimmed) {
			keywords = append(keywords, trimmed)
		}
	}
	if len(keywords) == 0 {
		return fallbackQuestions[rng.Intn(len(fallbackQuestions))]
	}

	keyword := keywords[rng.Intn(len(keywords))]
	template := questionTemplates[rng.Intn(len(questionTemplates))]
	return fmt.Sprintf(template, keyword)
}
