package stt

import (
	"context"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

type GoogleSpeech struct {
	c *speech.Client

	Encoding     speechpb.RecognitionConfig_AudioEncoding
	SampleRateHz int32
	Language     string
}

func NewGoogleSpeech(ctx context.Context, apiKey string) (*GoogleSpeech, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	c, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GoogleSpeech{
		c:            c,
		Encoding:     speechpb.RecognitionConfig_LINEAR16,
		SampleRateHz: 16000,
		Language:     "en-US",
	}, nil
}

func (g *GoogleSpeech) Close() error { return g.c.Close() }

func (g *GoogleSpeech) Transcribe(ctx context.Context, audio []byte) (*Transcript, error) {
	resp, err := g.c.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   g.Encoding,
			SampleRateHertz:            g.SampleRateHz,
			LanguageCode:               g.Language,
			EnableAutomaticPunctuation: true,
			EnableWordTimeOffsets:      true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return nil, err
	}

	out := &Transcript{}
	var parts []string

	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 {
			continue
		}
		alt := r.Alternatives[0]
		if alt.Transcript == "" {
			continue
		}

		seg := Segment{Text: strings.TrimSpace(alt.Transcript)}
		for _, w := range alt.Words {
			word := Word{
				Word:  w.Word,
				Start: w.StartTime.AsDuration().Seconds(),
				End:   w.EndTime.AsDuration().Seconds(),
			}
			seg.Words = append(seg.Words, word)
		}
		if len(seg.Words) > 0 {
			seg.Start = seg.Words[0].Start
			seg.End = seg.Words[len(seg.Words)-1].End
		}

		parts = append(parts, seg.Text)
		out.Segments = append(out.Segments, seg)
	}

	out.Text = strings.Join(parts, " ")
	if n := len(out.Segments); n > 0 {
		out.Duration = out.Segments[n-1].End
	}
	return out, nil
}
