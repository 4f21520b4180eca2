package errors

import (
	"context"
	stderrors "errors"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{code: CodeRequestMissing, want: codes.InvalidArgument},
		{code: CodeRitualNameTooLong, want: codes.InvalidArgument},
		{code: CodeInternal, want: codes.Internal},
		{code: CodeUnknown, want: codes.Internal},
		{code: Code("SOMETHING_NEW"), want: codes.Internal},
	}
	for _, tc := range tests {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("%s.GRPCCode() = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeInternal, "handler panic", cause)

	if !stderrors.Is(err, New(CodeInternal, "other message")) {
		t.Fatal("expected code match")
	}
	if stderrors.Is(err, New(CodeRitualNameTooLong, "")) {
		t.Fatal("expected code mismatch")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestGRPCStatusAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeRitualNameTooLong, "ritual name is 2048 bytes", map[string]string{"max_bytes": "1024"})

	st := status.Convert(err.GRPCStatus("en"))
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
	if st.Message() != "ritual name is 2048 bytes" {
		t.Fatalf("message = %q", st.Message())
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != string(CodeRitualNameTooLong) || info.GetDomain() != Domain {
		t.Fatalf("unexpected error info: %v", info)
	}
	if localized == nil {
		t.Fatal("expected localized message")
	}
	if localized.GetLocale() != "en-US" {
		t.Fatalf("locale = %q, want en-US", localized.GetLocale())
	}
	if localized.GetMessage() != "Ritual names may be at most 1024 bytes." {
		t.Fatalf("localized message = %q", localized.GetMessage())
	}
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "en-US"},
		{in: "en", want: "en-US"},
		{in: "en-GB,en;q=0.8", want: "en-US"},
		{in: "fr-CA", want: "en-US"},
		{in: ";;;", want: "en-US"},
	}
	for _, tc := range tests {
		if got := ResolveLocale(tc.in); got != tc.want {
			t.Fatalf("ResolveLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLocaleFromContext(t *testing.T) {
	if got := LocaleFromContext(context.Background()); got != BaseLocale {
		t.Fatalf("locale without metadata = %q", got)
	}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(LocaleHeader, "en-US"))
	if got := LocaleFromContext(ctx); got != "en-US" {
		t.Fatalf("locale = %q, want en-US", got)
	}
}

func TestUserMessageFallsBackToCode(t *testing.T) {
	if got := UserMessage("xx-XX", Code("UNLISTED"), nil); got != "UNLISTED" {
		t.Fatalf("UserMessage fallback = %q", got)
	}
	if got := UserMessage("xx-XX", CodeInternal, nil); got == "" || got == string(CodeInternal) {
		t.Fatalf("expected base locale message, got %q", got)
	}
}
