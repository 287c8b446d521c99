package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BUB97/mdbook-translator/internal"
	"github.com/BUB97/mdbook-translator/internal/cache"
	"github.com/BUB97/mdbook-translator/internal/cli"
	"github.com/BUB97/mdbook-translator/internal/preprocess"
	"github.com/BUB97/mdbook-translator/internal/provider"
	"github.com/BUB97/mdbook-translator/internal/translator"
)

// Processor handles the main translation run logic
type Processor struct {
	flags  *cli.Flags
	logger *logrus.Logger
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, logger *logrus.Logger) *Processor {
	if logger == nil {
		logger = logrus.New()
	}
	return &Processor{
		flags:  flags,
		logger: logger,
	}
}

// RunPreprocessor runs the mdBook preprocessor protocol: parse the
// [context, book] tuple from in, translate the book and write it to
// out. Only the book JSON goes to out; everything else is logged.
func (p *Processor) RunPreprocessor(ctx context.Context, in io.Reader, out io.Writer) error {
	pctx, b, err := preprocess.ParseInput(in)
	if err != nil {
		return err
	}

	pctx.CheckVersion(p.logger)

	cfg, err := pctx.TranslatorConfig()
	if err != nil {
		return err
	}
	p.applyBookConfig(cfg)

	tr, store, err := p.buildTranslator()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	p.logger.WithFields(logrus.Fields{
		"language": p.flags.Language,
		"provider": p.flags.Provider,
		"renderer": pctx.Renderer,
	}).Info("Translating book")

	if err := tr.TranslateBook(ctx, b); err != nil {
		return err
	}

	if store != nil {
		if err := store.Flush(); err != nil {
			return err
		}
	}

	if err := preprocess.WriteOutput(out, b); err != nil {
		return err
	}

	tr.LogSummary()
	return nil
}

// RunStandalone translates Markdown files outside an mdBook build. The
// [preprocessor.translator] table of a book.toml in the working
// directory is honored when present.
func (p *Processor) RunStandalone(ctx context.Context, files []string) error {
	cfg, err := preprocess.LoadBookTOML(".")
	if err != nil {
		return err
	}
	p.applyBookConfig(cfg)

	tr, store, err := p.buildTranslator()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	for _, file := range files {
		if err := p.translateFile(ctx, tr, file); err != nil {
			return err
		}
	}

	if store != nil {
		if err := store.Flush(); err != nil {
			return err
		}
	}

	tr.LogSummary()
	return nil
}

func (p *Processor) translateFile(ctx context.Context, tr *translator.Translator, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	p.logger.WithFields(logrus.Fields{
		"file": file,
		"size": len(data),
	}).Info("Translating file")

	translated, err := tr.TranslateText(ctx, string(data))
	if err != nil {
		return fmt.Errorf("file %s: %w", file, err)
	}

	if p.flags.DryRun {
		return nil
	}

	target := p.outputPath(file)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(translated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	p.logger.WithField("output", target).Info("Wrote translated file")
	return nil
}

// outputPath derives where a translated copy of file goes: into the
// output directory when one is set, otherwise next to the source with
// a language suffix, e.g. intro.md -> intro.chinese.md.
func (p *Processor) outputPath(file string) string {
	if p.flags.OutputDir != "" {
		return filepath.Join(p.flags.OutputDir, filepath.Base(file))
	}

	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)
	suffix := internal.LanguageSuffix(p.flags.Language)
	if suffix == "" {
		suffix = "translated"
	}
	return base + "." + suffix + ext
}

// applyBookConfig overlays the book's own [preprocessor.translator]
// table onto the flag values. The book's settings win: they travel
// with the book, while flags and env only provide defaults.
func (p *Processor) applyBookConfig(cfg *preprocess.TranslatorConfig) {
	if cfg.Language != "" {
		p.flags.Language = cfg.Language
	}
	if cfg.Prompt != "" {
		p.flags.Prompt = cfg.Prompt
	}
	if cfg.Proxy != "" {
		p.flags.Proxy = cfg.Proxy
	}
	if cfg.Provider != "" {
		p.flags.Provider = cfg.Provider
	}
	if cfg.Model != "" {
		p.flags.Model = cfg.Model
	}
	if cfg.BaseURL != "" {
		p.flags.BaseURL = cfg.BaseURL
	}
	if cfg.CacheFile != "" {
		p.flags.CacheFile = cfg.CacheFile
	}
	if cfg.CacheBackend != "" {
		p.flags.CacheBackend = cfg.CacheBackend
	}
	if cfg.MaxChunkSize > 0 {
		p.flags.MaxChunkSize = cfg.MaxChunkSize
	}
	if cfg.KeepOnFailure {
		p.flags.KeepOnFailure = true
	}
}

// buildTranslator assembles the provider, cache and translator from
// the resolved flags. In dry-run mode no provider is built, so no API
// key is needed to preview a run.
func (p *Processor) buildTranslator() (*translator.Translator, cache.Store, error) {
	store, err := cache.Open(p.flags.CacheBackend, p.flags.CacheFile)
	if err != nil {
		return nil, nil, err
	}

	opts := translator.Options{
		TargetLang:    p.flags.Language,
		ExtraPrompt:   p.flags.Prompt,
		MaxChunkSize:  p.flags.MaxChunkSize,
		KeepOnFailure: p.flags.KeepOnFailure,
		DryRun:        p.flags.DryRun,
	}

	if p.flags.DryRun {
		return translator.New(nil, store, p.logger, opts), store, nil
	}

	prov, err := provider.New(&provider.Config{
		Provider: p.flags.Provider,
		APIKey:   cli.GetAPIKey(p.flags.Provider),
		Model:    p.flags.Model,
		BaseURL:  p.flags.BaseURL,
		Proxy:    p.flags.Proxy,
		Timeout:  p.flags.Timeout,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	resilient := provider.NewResilientProvider(prov, p.logger)
	return translator.New(resilient, store, p.logger, opts), store, nil
}
