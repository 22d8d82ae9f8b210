// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

// Package i18n provides the localized message catalogue for user-facing
// text. Bundles are embedded at build time so a deployment never depends
// on locale files being present on disk.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLang is the fallback language for unknown or missing locales.
const DefaultLang = "ru"

var (
	bundlesOnce sync.Once
	bundles     map[string]map[string]string
	loadErr     error
)

func loadBundles() {
	bundles = make(map[string]map[string]string)
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		loadErr = fmt.Errorf("reading embedded locales: %w", err)
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		lang := strings.TrimSuffix(name, ".json")
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			loadErr = fmt.Errorf("reading locale %s: %w", lang, err)
			return
		}
		msgs := make(map[string]string)
		if err := json.Unmarshal(data, &msgs); err != nil {
			loadErr = fmt.Errorf("parsing locale %s: %w", lang, err)
			return
		}
		bundles[lang] = msgs
	}
	if _, ok := bundles[DefaultLang]; !ok {
		loadErr = fmt.Errorf("default locale %q missing from embedded bundles", DefaultLang)
	}
}

// Languages returns the set of available locale codes.
func Languages() []string {
	bundlesOnce.Do(loadBundles)
	if loadErr != nil {
		return nil
	}
	langs := make([]string, 0, len(bundles))
	for lang := range bundles {
		langs = append(langs, lang)
	}
	return langs
}

// Supported reports whether lang has an embedded bundle.
func Supported(lang string) bool {
	bundlesOnce.Do(loadBundles)
	_, ok := bundles[lang]
	return ok
}

// T resolves key in lang, formatting args with fmt.Sprintf when present.
// Unknown languages fall back to the default bundle; a key absent from
// every bundle is returned verbatim so missing translations surface in
// the output instead of vanishing.
func T(lang, key string, args ...interface{}) string {
	bundlesOnce.Do(loadBundles)
	if loadErr != nil {
		return key
	}
	msgs, ok := bundles[lang]
	if !ok {
		msgs = bundles[DefaultLang]
	}
	msg, ok := msgs[key]
	if !ok {
		if fallback, found := bundles[DefaultLang][key]; found {
			msg = fallback
		} else {
			return key
		}
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
