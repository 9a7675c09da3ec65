package speech

import (
	"context"
	"fmt"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// sampleRateHertz is the sample rate the form contract expects uploads
// to use. Recordings at other rates are not resampled; recognition
// quality on them is undefined.
const sampleRateHertz = 16000

// GoogleTranscriber wraps the Google Cloud Speech-to-Text client
type GoogleTranscriber struct {
	client *speechapi.Client
}

// NewGoogleTranscriber creates a transcriber backed by Google Cloud
// Speech-to-Text. With an empty credentials file, application default
// credentials are used.
func NewGoogleTranscriber(ctx context.Context, credentialsFile string) (*GoogleTranscriber, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := speechapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating speech client: %w", err)
	}

	return &GoogleTranscriber{client: client}, nil
}

// Transcribe recognizes speech in a linear-PCM recording
func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error) {
	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: sampleRateHertz,
			LanguageCode:    languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognize request failed: %w", err)
	}

	return firstTranscript(resp), nil
}

// Close releases the underlying client connection
func (t *GoogleTranscriber) Close() error {
	return t.client.Close()
}

// firstTranscript extracts the first alternative of the first result.
// Alternatives arrive ordered by the service's own confidence ranking,
// so the first is the best guess. Zero results normalize to "".
func firstTranscript(resp *speechpb.RecognizeResponse) string {
	if resp == nil || len(resp.Results) == 0 {
		return ""
	}
	alternatives := resp.Results[0].Alternatives
	if len(alternatives) == 0 {
		return ""
	}
	return alternatives[0].Transcript
}
