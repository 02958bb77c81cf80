package utils

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed i18n/*.json
var translations embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
	bundleErr  error
)

// InitI18NBundle loads every embedded translation file. It is safe to call
// more than once.
func InitI18NBundle() error {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := translations.ReadDir("i18n")
		if err != nil {
			bundleErr = err
			return
		}
		for _, e := range entries {
			if _, err := b.LoadMessageFileFS(translations, path.Join("i18n", e.Name())); err != nil {
				bundleErr = fmt.Errorf("fail to load %s: %w", e.Name(), err)
				return
			}
		}
		bundle = b
	})
	return bundleErr
}

// NewLocalizer returns a localizer for lang with English as the fallback.
// Both "hi-IN" and "hi_in" style tags are accepted.
func NewLocalizer(lang string) *i18n.Localizer {
	if err := InitI18NBundle(); err != nil {
		log.WithField("prefix", "i18n").WithError(err).Error("fail to init i18n bundle")
	}
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	return i18n.NewLocalizer(bundle, lang, language.English.String())
}

// Label localizes messageID and falls back to the given default when the
// message is unknown.
func Label(localizer *i18n.Localizer, messageID, fallback string) string {
	s, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: messageID, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return s
}
