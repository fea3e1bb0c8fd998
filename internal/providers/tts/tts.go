package tts

import "context"

type Provider interface {
	// Synthesize renders text to speech and returns a playable URL.
	// The URL is ephemeral; nothing requires it to outlive client playback.
	Synthesize(ctx context.Context, text string) (audioURL string, err error)
	Close() error
}
