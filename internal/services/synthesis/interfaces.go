package synthesis

import "context"

// Synthesizer converts text into encoded speech audio.
type Synthesizer interface {
	// Synthesize returns one complete MP3 buffer for the given text.
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}
