package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// snippetLimit caps quoted user text and entry text inside assistant replies.
const snippetLimit = 120

const assistantGreeting = "Привет! Я помогу отрефлексировать твой день. Сохрани настроение и напиши мне пару слов."

// Canned reflection prompts keyed by mood bucket. The low and neutral buckets
// share the grounding-breathing prompt as their third item.
var (
	promptBreathing = "Попробуй медленно вдохнуть на четыре счёта и выдохнуть на шесть."

	promptsLow = []string{
		"Что сейчас даётся тяжелее всего?",
		"Какая маленькая вещь могла бы немного помочь прямо сейчас?",
		promptBreathing,
	}
	promptsNeutral = []string{
		"Что сегодня прошло нормально, даже если не отлично?",
		"Чего тебе не хватило до хорошего дня?",
		promptBreathing,
	}
	promptsGood = []string{
		"Что именно сделало этот день хорошим?",
		"Как сохранить это ощущение на завтра?",
		"Кого или что ты хочешь поблагодарить сегодня?",
	}
)

type clientAssistantService struct {
}

func NewClientAssistantService() ClientAssistantService {
	return &clientAssistantService{}
}

// Greeting implements [ClientAssistantService].
func (s *clientAssistantService) Greeting() models.AssistantMessage {
	return models.AssistantMessage{Role: models.RoleAssistant, Text: assistantGreeting}
}

// Reply implements [ClientAssistantService]. The reply is assembled from a
// preamble naming the score, the three bucket prompts, an optional line
// quoting the latest journal entry and an optional line echoing the user
// message. Empty optional inputs drop their lines entirely.
func (s *clientAssistantService) Reply(score int, userText string, lastEntryText string) string {
	lines := []string{
		fmt.Sprintf("Твоя оценка настроения: %d из 5.", score),
	}

	for i, prompt := range bucketPrompts(score) {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, prompt))
	}

	if strings.TrimSpace(lastEntryText) != "" {
		lines = append(lines, fmt.Sprintf("Твоя последняя запись: «%s»", truncateSnippet(lastEntryText)))
	}
	if strings.TrimSpace(userText) != "" {
		lines = append(lines, fmt.Sprintf("Ты написал(а): «%s»", truncateSnippet(userText)))
	}

	return strings.Join(lines, "\n")
}

func bucketPrompts(score int) []string {
	switch {
	case score <= 2:
		return promptsLow
	case score == 3:
		return promptsNeutral
	default:
		return promptsGood
	}
}

// truncateSnippet limits s to snippetLimit characters, appending an ellipsis
// when something was cut. Counting is rune-based so multi-byte text is not
// split mid-character.
func truncateSnippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetLimit {
		return s
	}

	return string(runes[:snippetLimit]) + "…"
}
