package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	texttospeech "google.golang.org/api/texttospeech/v1"
	"google.golang.org/api/option"
)

// Client wraps the Google Cloud Text-to-Speech API service.
type Client struct {
	service  *texttospeech.Service
	language string
	voice    string
}

var _ ISpeech = (*Client)(nil)

// NewClientFromCredentialsFile creates a TTS client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, language, voice string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, language, voice)
}

// NewClientFromCredentialsJSON creates a TTS client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, language, voice string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, texttospeech.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenSource := config.TokenSource(ctx)
	svc, err := texttospeech.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}

	if language == "" {
		language = "en-IN"
	}

	return &Client{service: svc, language: language, voice: voice}, nil
}

// Synthesize renders text to MP3 audio bytes.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: c.language,
			Name:         c.voice,
		},
		AudioConfig: &texttospeech.AudioConfig{AudioEncoding: "MP3"},
	}

	resp, err := c.service.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return audio, nil
}
