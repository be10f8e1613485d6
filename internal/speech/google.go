package speech

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const synthesizeURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

// Synthesizer turns text into MP3 audio via the Google Cloud
// Text-to-Speech REST API, caching results on disk keyed by content hash
// so re-reading a paragraph never re-bills.
type Synthesizer struct {
	apiKey     string
	voice      string
	cacheDir   string
	httpClient *http.Client
}

// NewSynthesizer builds a synthesizer writing cached audio under
// cacheDir. voice may be empty for the API default.
func NewSynthesizer(apiKey, voice, cacheDir string) (*Synthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("speech: API key required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("speech: create cache dir: %w", err)
	}
	return &Synthesizer{
		apiKey:   apiKey,
		voice:    voice,
		cacheDir: cacheDir,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

func (s *Synthesizer) cachePath(text string) string {
	h := sha256.Sum256([]byte(s.voice + ":" + text))
	return filepath.Join(s.cacheDir, hex.EncodeToString(h[:16])+".mp3")
}

// Synthesize returns MP3 audio for text, from cache when available.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	path := s.cachePath(text)
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	voice := map[string]any{"languageCode": "en-US"}
	if s.voice != "" {
		voice["name"] = s.voice
	}
	reqBody, err := json.Marshal(map[string]any{
		"input":       map[string]string{"text": text},
		"voice":       voice,
		"audioConfig": map[string]string{"audioEncoding": "MP3"},
	})
	if err != nil {
		return nil, fmt.Errorf("speech: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		synthesizeURL+"?key="+s.apiKey, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech: synthesize request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("speech: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech: synthesize failed (%d): %s", resp.StatusCode, body)
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("speech: parse response: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("speech: decode audio: %w", err)
	}

	// Cache failures are not fatal, the audio is already in hand.
	_ = os.WriteFile(path, audio, 0o644)
	return audio, nil
}
