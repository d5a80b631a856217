package i18n

import (
	"context"

	"github.com/PauloHFS/pagelinks/internal/contextkeys"
)

type Translation struct {
	Previous string
	Next     string
	Ellipsis string
}

var ptBR = Translation{
	Previous: "Anterior",
	Next:     "Próxima",
	Ellipsis: "…",
}

var enUS = Translation{
	Previous: "Prev",
	Next:     "Next",
	Ellipsis: "…",
}

// Get retorna as traduções baseadas no idioma do contexto
func Get(ctx context.Context) Translation {
	locale, _ := ctx.Value(contextkeys.LocaleKey).(string)
	switch locale {
	case "en":
		return enUS
	default:
		return ptBR
	}
}
