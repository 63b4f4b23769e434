package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"subfeed/internal/config"
	"subfeed/internal/domain"
	"subfeed/internal/service"
)

var _ service.FilterPolicy = (*Blocker)(nil)

var errMissingVideo = errors.New("video card without item")

// Blocker rejects cards from blocked channels, titles matching blocked keywords, videos below a
// view threshold and titles detected in a language outside the allowed set.
type Blocker struct {
	channels  map[domain.ChannelID]struct{}
	keywords  []*regexp.Regexp
	minViews  int64
	languages map[string]struct{}
	detector  lingua.LanguageDetector
}

// New builds a Blocker from configuration. The language detector is only built when languages are set.
func New(cfg config.FilterConfig) (*Blocker, error) {
	var detector lingua.LanguageDetector
	if len(cfg.Languages) > 0 {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithMinimumRelativeDistance(0.25).
			WithLowAccuracyMode().
			Build()
	}
	return NewWithDetector(cfg, detector)
}

func NewWithDetector(cfg config.FilterConfig, detector lingua.LanguageDetector) (*Blocker, error) {
	b := &Blocker{
		channels:  make(map[domain.ChannelID]struct{}, len(cfg.BlockedChannels)),
		minViews:  cfg.MinViews,
		languages: make(map[string]struct{}, len(cfg.Languages)),
		detector:  detector,
	}

	for _, id := range cfg.BlockedChannels {
		b.channels[domain.ChannelID(id)] = struct{}{}
	}

	for _, pattern := range cfg.BlockedKeywords {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("compile blocked keyword %q: %w", pattern, err)
		}
		b.keywords = append(b.keywords, re)
	}

	for _, code := range cfg.Languages {
		b.languages[strings.ToLower(code)] = struct{}{}
	}

	return b, nil
}

// Allow reports whether the card stays in the feed.
func (b *Blocker) Allow(card domain.Card) (bool, error) {
	if _, blocked := b.channels[card.ChannelID]; blocked {
		return false, nil
	}

	for _, re := range b.keywords {
		if re.MatchString(card.Title) {
			return false, nil
		}
	}

	if card.Kind != domain.CardVideo {
		return true, nil
	}
	if card.Video == nil {
		return false, fmt.Errorf("%w: %s", errMissingVideo, card.ID)
	}

	if b.minViews > 0 && card.Video.ViewCount != nil && *card.Video.ViewCount < b.minViews {
		return false, nil
	}

	return b.allowLanguage(card.Title), nil
}

// allowLanguage keeps titles whose language cannot be told apart.
func (b *Blocker) allowLanguage(title string) bool {
	if len(b.languages) == 0 || b.detector == nil || strings.TrimSpace(title) == "" {
		return true
	}

	lang, ok := b.detector.DetectLanguageOf(title)
	if !ok {
		return true
	}

	_, allowed := b.languages[strings.ToLower(lang.IsoCode639_1().String())]
	return allowed
}
