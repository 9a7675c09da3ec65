package speech

import "context"

// Transcriber converts recorded audio into text.
type Transcriber interface {
	// Transcribe recognizes speech in a 16 kHz linear-PCM recording and
	// returns the transcript. An empty transcript means no speech was
	// detected and is not an error.
	Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error)
}
