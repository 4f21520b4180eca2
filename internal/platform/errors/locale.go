package errors

import (
	"context"

	"golang.org/x/text/language"
	"google.golang.org/grpc/metadata"
)

// LocaleHeader is the gRPC metadata key callers use to request a message locale.
const LocaleHeader = "accept-language"

var matcher = language.NewMatcher(supportedLocales)

// ResolveLocale picks the best supported locale for an Accept-Language style
// value. Unknown or malformed values resolve to the base locale.
func ResolveLocale(value string) string {
	if value == "" {
		return BaseLocale
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return BaseLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return BaseLocale
	}
	return supportedLocales[index].String()
}

// LocaleFromContext resolves the locale from incoming gRPC metadata.
func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return BaseLocale
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return BaseLocale
	}
	values := md.Get(LocaleHeader)
	if len(values) == 0 {
		return BaseLocale
	}
	return ResolveLocale(values[0])
}
