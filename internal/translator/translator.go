package translator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BUB97/mdbook-translator/internal"
	"github.com/BUB97/mdbook-translator/internal/book"
	"github.com/BUB97/mdbook-translator/internal/cache"
	"github.com/BUB97/mdbook-translator/internal/chunk"
	"github.com/BUB97/mdbook-translator/internal/provider"
)

// logPreviewRunes bounds translated text shown in progress output.
const logPreviewRunes = 100

// Options configures a translation pass.
type Options struct {
	TargetLang  string
	ExtraPrompt string

	// MaxChunkSize bounds one API request, in characters.
	MaxChunkSize int

	// KeepOnFailure substitutes the source text for chunks that fail
	// to translate instead of failing the run.
	KeepOnFailure bool

	// DryRun walks and chunks without calling the API or changing
	// any content.
	DryRun bool
}

// Stats counts what a translation pass actually did.
type Stats struct {
	Chapters  int
	Chunks    int
	CacheHits int
	APICalls  int
	Failures  int
	CharsIn   int
	CharsOut  int
}

// Translator translates chapter content through a provider, backed by
// the translation cache.
type Translator struct {
	provider provider.Provider
	cache    cache.Store
	logger   *logrus.Logger
	opts     Options
	stats    Stats
}

// New creates a translator. The cache may be nil, in which case every
// chunk goes to the provider.
func New(p provider.Provider, store cache.Store, logger *logrus.Logger, opts Options) *Translator {
	if logger == nil {
		logger = logrus.New()
	}
	if opts.TargetLang == "" {
		opts.TargetLang = "Chinese"
	}
	if opts.MaxChunkSize <= 0 {
		opts.MaxChunkSize = chunk.DefaultMaxChars
	}

	return &Translator{
		provider: p,
		cache:    store,
		logger:   logger,
		opts:     opts,
	}
}

// Stats returns what the pass has done so far.
func (t *Translator) Stats() Stats {
	return t.stats
}

// TranslateBook translates every chapter of the book in place,
// depth-first, leaving separators and part titles untouched.
func (t *Translator) TranslateBook(ctx context.Context, b *book.Book) error {
	return book.WalkChapters(b.Sections, func(c *book.Chapter) error {
		t.stats.Chapters++
		t.logger.WithFields(logrus.Fields{
			"chapter": c.Number.String() + c.Name,
			"size":    len(c.Content),
		}).Info("Processing chapter")

		translated, err := t.TranslateText(ctx, c.Content)
		if err != nil {
			return fmt.Errorf("chapter %q: %w", c.Name, err)
		}
		c.Content = translated
		return nil
	})
}

// TranslateText chunks one document and translates it chunk by chunk.
func (t *Translator) TranslateText(ctx context.Context, text string) (string, error) {
	chunks := chunk.Split(text, t.opts.MaxChunkSize)
	t.stats.Chunks += len(chunks)
	t.stats.CharsIn += len(text)

	if t.opts.DryRun {
		for _, c := range chunks {
			if _, ok := t.cacheGet(c); ok {
				t.stats.CacheHits++
			} else {
				t.stats.APICalls++
			}
		}
		t.stats.CharsOut += len(text)
		return text, nil
	}

	translated := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out, err := t.translateChunk(ctx, c)
		if err != nil {
			return "", err
		}
		translated = append(translated, out)
	}

	result := chunk.Join(translated)
	t.stats.CharsOut += len(result)
	return result, nil
}

func (t *Translator) translateChunk(ctx context.Context, text string) (string, error) {
	if cached, ok := t.cacheGet(text); ok {
		t.stats.CacheHits++
		t.logger.WithField("translation", internal.Truncate(cached, logPreviewRunes)).Debug("Cache hit")
		return cached, nil
	}

	t.logger.WithFields(logrus.Fields{
		"provider": t.provider.Name(),
		"size":     len(text),
	}).Info("Requesting translation, please wait patiently")

	start := time.Now()
	t.stats.APICalls++
	translated, err := t.provider.Translate(ctx, provider.Request{
		Text:        text,
		TargetLang:  t.opts.TargetLang,
		ExtraPrompt: t.opts.ExtraPrompt,
	})
	if err != nil {
		t.stats.Failures++
		// A tripped breaker means the endpoint is down: keeping source
		// text chunk after chunk would silently emit an untranslated book.
		if t.opts.KeepOnFailure && ctx.Err() == nil && !errors.Is(err, provider.ErrBreakerOpen) {
			t.logger.WithError(err).Warn("Translation failed, keeping source text")
			return text, nil
		}
		return "", err
	}

	t.logger.WithFields(logrus.Fields{
		"duration":    time.Since(start).Round(time.Millisecond).String(),
		"translation": internal.Truncate(translated, logPreviewRunes),
	}).Info("Request succeeded")

	t.cachePut(text, translated)
	return translated, nil
}

func (t *Translator) cacheGet(text string) (string, bool) {
	if t.cache == nil {
		return "", false
	}
	return t.cache.Get(cache.Key(text, t.opts.TargetLang))
}

func (t *Translator) cachePut(text, translated string) {
	if t.cache == nil {
		return
	}
	t.cache.Put(cache.Key(text, t.opts.TargetLang), translated)
}

// LogSummary reports what the whole run did.
func (t *Translator) LogSummary() {
	t.logger.WithFields(logrus.Fields{
		"chapters":   t.stats.Chapters,
		"chunks":     t.stats.Chunks,
		"cache_hits": t.stats.CacheHits,
		"api_calls":  t.stats.APICalls,
		"failures":   t.stats.Failures,
		"chars_in":   t.stats.CharsIn,
		"chars_out":  t.stats.CharsOut,
	}).Info("Translation pass finished")
}
