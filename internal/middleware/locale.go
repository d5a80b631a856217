package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/PauloHFS/pagelinks/internal/contextkeys"
)

const defaultLocale = "pt"

var supportedLocales = map[string]bool{"pt": true, "en": true}

func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), contextkeys.LocaleKey, detectLocale(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func detectLocale(r *http.Request) string {
	// 1. Verificar Cookie (preferência manual)
	if cookie, err := r.Cookie("lang"); err == nil && supportedLocales[cookie.Value] {
		return cookie.Value
	}

	// 2. Verificar Header Accept-Language, na ordem enviada
	for part := range strings.SplitSeq(r.Header.Get("Accept-Language"), ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang, _, _ := strings.Cut(strings.ToLower(tag), "-")
		if supportedLocales[lang] {
			return lang
		}
	}

	return defaultLocale
}
