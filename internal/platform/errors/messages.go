package errors

import (
	"bytes"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the fallback locale for user-facing messages.
const BaseLocale = "en-US"

var supportedLocales = []language.Tag{language.AmericanEnglish}

var catalogs = map[string]map[Code]*template.Template{
	BaseLocale: parseCatalog(map[Code]string{
		CodeUnknown:           "An unexpected error occurred.",
		CodeRequestMissing:    "The request is required.",
		CodeRitualNameTooLong: "Ritual names may be at most {{.max_bytes}} bytes.",
		CodeInternal:          "The ritual could not be performed. Please try again.",
	}),
}

func parseCatalog(messages map[Code]string) map[Code]*template.Template {
	parsed := make(map[Code]*template.Template, len(messages))
	for code, text := range messages {
		parsed[code] = template.Must(template.New(string(code)).Option("missingkey=zero").Parse(text))
	}
	return parsed
}

// UserMessage renders the user-facing message for code in locale.
// Falls back to the base locale, then to the code itself.
func UserMessage(locale string, code Code, metadata map[string]string) string {
	catalog, ok := catalogs[locale]
	if !ok {
		catalog = catalogs[BaseLocale]
	}
	tmpl, ok := catalog[code]
	if !ok {
		return string(code)
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return string(code)
	}
	return buf.String()
}
