package config

import (
	pluralize "github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

var pluralizer = pluralize.NewClient()

// NormalizeResource canonicalizes a resource name from configuration:
// snake_case and pluralized, so "aiInsight", "AI_Insights", and
// "ai_insights" all normalize to "ai_insights". Normalization happens
// before the name is validated against the resource enumeration, which
// keeps hand-written config forgiving without loosening the enumeration
// itself.
func NormalizeResource(name string) string {
	return pluralizer.Plural(strcase.ToSnake(name))
}

// NormalizeAction canonicalizes an action name from configuration. Actions
// are single verbs, so this is just snake_case folding.
func NormalizeAction(name string) string {
	return strcase.ToSnake(name)
}
