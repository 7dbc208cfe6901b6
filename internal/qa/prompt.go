package qa

import (
	"fmt"
	"strings"
)

const answerSystemPrompt = `You are a teaching assistant for an online lesson platform. A student is asking a question about a specific lesson. Answer using ONLY the lesson excerpt provided. If the excerpt does not contain the information needed, set answerable to false and explain briefly what is missing — never invent facts that are not in the excerpt.`

func buildAnswerUserMessage(payload ContextPayload, question string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson: %s\n", payload.LessonTitle))
	if payload.Truncated {
		b.WriteString("(The excerpt below is a selection from a longer lesson.)\n")
	}

	b.WriteString("\nLesson excerpt:\n")
	b.WriteString(payload.Text)
	b.WriteString("\n\nStudent question:\n")
	b.WriteString(strings.TrimSpace(question))

	b.WriteString(`

Instructions:
1. Answer in 2-6 sentences, in plain language a student can follow.
2. Ground every claim in the lesson excerpt above.
3. If the excerpt does not cover the question, set answerable to false and leave the answer empty.`)

	return b.String()
}
