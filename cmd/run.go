package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/priyam/learnsphere/internal/app"
	"github.com/priyam/learnsphere/internal/lesson"
	"github.com/priyam/learnsphere/internal/llm"
	"github.com/priyam/learnsphere/internal/speech"
	"github.com/priyam/learnsphere/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var deps app.Deps

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("init event repo: %w", err)
	}
	deps.EventRepo = eventRepo

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lesson generation will be unavailable.")
	} else {
		deps.LessonService = lesson.NewService(provider, lesson.DefaultConfig())
	}

	if engine, err := buildSpeechEngine(dbPath); err == nil {
		deps.Engine = engine
	}

	return app.Run(deps)
}

// buildSpeechEngine wires the read-aloud engine when a TTS key is set.
func buildSpeechEngine(dbPath string) (speech.Engine, error) {
	apiKey := os.Getenv("GOOGLE_TTS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_TTS_API_KEY not set")
	}
	cacheDir := filepath.Join(filepath.Dir(dbPath), "tts-cache")
	synth, err := speech.NewSynthesizer(apiKey, os.Getenv("LEARNSPHERE_TTS_VOICE"), cacheDir)
	if err != nil {
		return nil, err
	}
	return speech.NewPlayer(synth), nil
}
