package translation

import "context"

// Translator translates text into a target language. The source
// language is auto-detected by the implementation and not reported.
type Translator interface {
	// Translate returns the text translated into targetLanguage. Empty
	// input is passed through to the service, not special-cased here.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
