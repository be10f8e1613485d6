package lesson

import "strings"

// LearningStyle is a closed-set tailoring parameter passed through to the
// content provider. The core never interprets it beyond pass-through.
type LearningStyle string

const (
	StyleVisual         LearningStyle = "Visual"
	StyleAuditory       LearningStyle = "Auditory"
	StyleKinesthetic    LearningStyle = "Kinesthetic"
	StyleReadingWriting LearningStyle = "Reading/Writing"
)

// LearningStyles lists all styles in display order.
func LearningStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadingWriting}
}

// KnowledgeLevel describes the learner's self-reported familiarity.
type KnowledgeLevel string

const (
	LevelBeginner     KnowledgeLevel = "Beginner"
	LevelIntermediate KnowledgeLevel = "Intermediate"
	LevelAdvanced     KnowledgeLevel = "Advanced"
)

// KnowledgeLevels lists all levels in display order.
func KnowledgeLevels() []KnowledgeLevel {
	return []KnowledgeLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Request describes what the user asked to learn. Immutable once created:
// it is held as "the request that produced the current lesson" and reused
// verbatim when retrying with a simplified lesson.
type Request struct {
	Topic          string
	SubTopic       string
	LearningStyle  LearningStyle
	KnowledgeLevel KnowledgeLevel
}

// Lesson is the structured educational artifact produced wholesale by the
// content provider.
type Lesson struct {
	Title        string
	Introduction string
	Sections     []Section
	Quiz         []QuizQuestion
}

// Section is one unit of the lesson. Elaboration starts empty and is set
// at most once, via WithElaboration.
type Section struct {
	Title       string
	Content     string
	Elaboration string
}

// Paragraphs splits the section content on line breaks, dropping blanks.
func (s Section) Paragraphs() []string {
	var out []string
	for _, p := range strings.Split(s.Content, "\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// WithElaboration returns a copy of the lesson with section i replaced by
// a copy carrying the elaboration text. All other sections are shared
// unchanged; the receiver is not mutated, so any holder of the previous
// lesson value is unaffected.
func (l *Lesson) WithElaboration(i int, text string) *Lesson {
	sections := make([]Section, len(l.Sections))
	copy(sections, l.Sections)
	sections[i].Elaboration = text

	out := *l
	out.Sections = sections
	return &out
}

// QuizQuestion is one multiple-choice question with exactly four options.
type QuizQuestion struct {
	Question           string
	Options            []string
	CorrectAnswerIndex int
}
