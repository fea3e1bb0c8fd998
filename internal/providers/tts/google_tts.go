package tts

import (
	"bytes"
	"context"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/voxprep/voxprep/internal/storage"
)

type GoogleTTS struct {
	c        *texttospeech.Client
	uploader storage.Uploader

	Language string
	Voice    string
}

func NewGoogleTTS(ctx context.Context, apiKey string, uploader storage.Uploader) (*GoogleTTS, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	c, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GoogleTTS{
		c:        c,
		uploader: uploader,
		Language: "en-US",
		Voice:    "en-US-Neural2-D",
	}, nil
}

func (g *GoogleTTS) Close() error { return g.c.Close() }

func (g *GoogleTTS) Synthesize(ctx context.Context, text string) (string, error) {
	resp, err := g.c.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.Language,
			Name:         g.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return "", err
	}

	objectName := "tts/" + uuid.NewString() + ".mp3"
	return g.uploader.Upload(ctx, objectName, "audio/mpeg", bytes.NewReader(resp.AudioContent))
}
