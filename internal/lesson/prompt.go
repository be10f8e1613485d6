package lesson

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const lessonSystemPrompt = `You are an expert instructional designer. Your task is to create a personalized, engaging, and interactive educational lesson based on the user's topic, learning style, and knowledge level.

The lesson sections must be structured progressively, starting with the most fundamental concepts and gradually building up to more complex topics, ensuring a smooth learning curve.

Tailor the content to the specified learning style:
- For 'Visual' learners, describe diagrams, charts, or visual analogies. Use vivid imagery in your language.
- For 'Auditory' learners, structure content as if it were a script for a podcast or lecture. Use questions and conversational language.
- For 'Kinesthetic' learners, suggest simple, hands-on activities, experiments, or real-world examples the user can engage with.
- For 'Reading/Writing' learners, provide well-structured text, definitions, and encourage note-taking or summarizing.`

// buildLessonUserMessage assembles the user prompt. A retry asks for a
// simpler, more foundational take on the same topic.
func buildLessonUserMessage(req Request, isRetry bool) string {
	var b strings.Builder

	if isRetry {
		b.WriteString(fmt.Sprintf("This is a retry attempt for the user. Generate a SIMPLER, more foundational version of the lesson on %q", req.Topic))
		if req.SubTopic != "" {
			b.WriteString(fmt.Sprintf(" with a focus on %q", req.SubTopic))
		}
		b.WriteString(". Break down the core concepts into very easy-to-understand parts. The goal is to help a struggling learner grasp the basics.")
	} else {
		b.WriteString(fmt.Sprintf("Generate a lesson on the topic of %q.", req.Topic))
		if req.SubTopic != "" {
			b.WriteString(fmt.Sprintf(" Specifically, focus on the sub-topic: %q.", req.SubTopic))
		}
	}

	b.WriteString(fmt.Sprintf(" The target audience has a %q understanding of the subject.", req.KnowledgeLevel))
	b.WriteString(fmt.Sprintf(" The lesson should be tailored for a %q learning style.", req.LearningStyle))
	b.WriteString(fmt.Sprintf(" Ensure the content is clear, concise, and broken down into digestible sections. The quiz must contain exactly %d questions, each with %d options.", QuizLength, OptionsPerQuestion))

	return b.String()
}

const elaborationSystemPrompt = `You are a helpful teaching assistant. Your goal is to explain a concept in a very simple and relatable way.`

// elaborationContentLimit bounds how much section content is sent with an
// elaboration request.
const elaborationContentLimit = 500

func buildElaborationUserMessage(mainTopic, sectionTitle, sectionContent string, level KnowledgeLevel) string {
	excerpt := truncateRunes(sectionContent, elaborationContentLimit)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("The main topic of the lesson is %q. The current section is %q.\n", mainTopic, sectionTitle))
	b.WriteString(fmt.Sprintf("The content of the section is: %q...\n\n", excerpt))
	b.WriteString(fmt.Sprintf("Based on this, generate a simple, clear, and concise analogy or a real-world example to help a person with a %q level of understanding grasp the core idea.", level))
	b.WriteString(" The explanation should be short (2-4 sentences). Do not repeat the section title. Start directly with the analogy/example.")

	return b.String()
}

// truncateRunes cuts s to at most n runes. Slicing by byte offset could
// split a multi-byte character and leave invalid UTF-8 in the prompt.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
