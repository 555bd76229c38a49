package usecase

import (
	"strings"

	"vocabstream-api/internal/domain"
)

// BuildPromptMessages assembles the two-message prompt sent to the generation
// service: the deterministic system instruction followed by the learner's
// message. The slice is built fresh per call and shares no state.
func BuildPromptMessages(level domain.Level, specialty, message string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: BuildSystemInstruction(level, specialty)},
		{Role: domain.RoleUser, Content: message},
	}
}

// BuildSystemInstruction composes the system instruction for a conversation
// turn. It is a pure function of (level, specialty): identical inputs always
// yield the identical string, so tests can pin its exact output. An empty
// specialty omits the topical clause; nothing else about the instruction
// changes.
func BuildSystemInstruction(level domain.Level, specialty string) string {
	lines := []string{
		"You are an English conversation partner helping a learner practice everyday conversation.",
		"The learner's CEFR proficiency level is " + string(level) + ": " + levelGuidance(level),
	}
	if topic := normalizeSpecialty(specialty); topic != "" {
		lines = append(lines, "Keep the conversation in the context of "+topic+".")
	}
	lines = append(lines,
		"Gently correct significant mistakes in one short sentence, then carry the conversation forward.",
		"End your reply with a question that keeps the learner talking.",
	)
	return strings.Join(lines, "\n")
}

func levelGuidance(level domain.Level) string {
	switch level {
	case domain.LevelA1:
		return "use very short sentences, the most common words, and mostly the present tense."
	case domain.LevelA2:
		return "use short, simple sentences about familiar everyday topics."
	case domain.LevelB1:
		return "use clear everyday language and introduce occasional new vocabulary."
	case domain.LevelB2:
		return "use natural conversational language with some idioms, and vary your sentence structure."
	case domain.LevelC1:
		return "use fluent, nuanced language with idiomatic expressions and precise vocabulary."
	case domain.LevelC2:
		return "use sophisticated, native-like language without simplification."
	}
	// ParseLevel guards every entry point, so this only serves stray callers.
	return "match the learner's demonstrated proficiency."
}

// normalizeSpecialty collapses runs of whitespace so the instruction string
// stays deterministic regardless of caller formatting.
func normalizeSpecialty(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
