package translation

import (
	"context"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator wraps the Google Cloud Translation v2 client
type GoogleTranslator struct {
	client *translate.Client
}

// NewGoogleTranslator creates a translator backed by Google Cloud
// Translation. With an empty credentials file, application default
// credentials are used.
func NewGoogleTranslator(ctx context.Context, credentialsFile string) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating translate client: %w", err)
	}

	return &GoogleTranslator{client: client}, nil
}

// Translate translates text into the target language. The detected
// source language in the response is discarded.
func (t *GoogleTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	target, err := language.Parse(targetLanguage)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", targetLanguage, err)
	}

	translations, err := t.client.Translate(ctx, []string{text}, target, nil)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	if len(translations) == 0 {
		return "", nil
	}

	return translations[0].Text, nil
}

// Close releases the underlying client connection
func (t *GoogleTranslator) Close() error {
	return t.client.Close()
}
