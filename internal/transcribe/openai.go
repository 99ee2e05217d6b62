// ABOUTME: OpenAI Whisper transcription backend with retry logic
// ABOUTME: Uses verbose_json so segment-level timestamps come back
package transcribe

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/util"
)

// ClientConfig holds configuration for the OpenAI transcription backend
type ClientConfig struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default backend configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		Model:      openai.Whisper1,
		Timeout:    5 * time.Minute,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
	}
}

// OpenAIBackend transcribes media files through the OpenAI audio API.
type OpenAIBackend struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIBackend creates a backend with the given configuration.
func NewOpenAIBackend(config *ClientConfig) (*OpenAIBackend, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	model := config.Model
	if model == "" {
		model = openai.Whisper1
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &OpenAIBackend{
		client:     openai.NewClient(config.APIKey),
		model:      model,
		timeout:    timeout,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}, nil
}

// Transcribe uploads the media file and returns its transcript fragments
// with file-local timestamps, retrying transient failures with backoff.
func (b *OpenAIBackend) Transcribe(ctx context.Context, mediaPath string) ([]models.TranscriptFragment, error) {
	var lastErr error

	for attempt := 0; attempt <= b.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(util.Backoff(b.retryDelay, attempt)):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrTranscriptionFailed, ctx.Err())
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, b.timeout)
		resp, err := b.client.CreateTranscription(attemptCtx, openai.AudioRequest{
			Model:    b.model,
			FilePath: mediaPath,
			Format:   openai.AudioResponseFormatVerboseJSON,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		return FragmentsFromResponse(resp), nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrTranscriptionFailed, b.maxRetries+1, lastErr)
}

// FragmentsFromResponse maps a verbose_json audio response onto transcript
// fragments, keeping the API's segment order. When the API returns no
// segment timings (plain text only), the whole text becomes one fragment.
func FragmentsFromResponse(resp openai.AudioResponse) []models.TranscriptFragment {
	if len(resp.Segments) == 0 {
		if resp.Text == "" {
			return nil
		}
		return []models.TranscriptFragment{{Start: 0, End: resp.Duration, Text: resp.Text}}
	}

	frags := make([]models.TranscriptFragment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		frags = append(frags, models.TranscriptFragment{
			ID:    seg.ID,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return frags
}
