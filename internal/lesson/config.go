package lesson

// Config holds generation settings.
type Config struct {
	// LessonMaxTokens caps a full lesson response. A lesson carries an
	// introduction, several sections, and a 10-question quiz, so this is
	// far larger than the elaboration cap.
	LessonMaxTokens int

	// ElaborationMaxTokens caps a 2-4 sentence analogy.
	ElaborationMaxTokens int

	// Temperature for a fresh lesson.
	Temperature float64

	// RetryTemperature for a simplified retry lesson. Slightly lower:
	// less creative for a simpler take.
	RetryTemperature float64

	// ElaborationTemperature for analogies. Higher, to encourage a
	// creative comparison.
	ElaborationTemperature float64
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		LessonMaxTokens:        8192,
		ElaborationMaxTokens:   256,
		Temperature:            0.7,
		RetryTemperature:       0.6,
		ElaborationTemperature: 0.8,
	}
}
