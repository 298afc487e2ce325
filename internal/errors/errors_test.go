package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tessro/cadence/internal/api"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "explicit suggestion wins",
			err:  WithSuggestion(errors.New("boom"), "try turning it off and on"),
			want: "try turning it off and on",
		},
		{
			name: "unauthorized API response",
			err:  &api.Error{Status: 401},
			want: "Check your developer and user tokens",
		},
		{
			name: "wrapped API response",
			err:  fmt.Errorf("failed to rate: %w", &api.Error{Status: 429}),
			want: "Too many requests",
		},
		{
			name: "server error",
			err:  &api.Error{Status: 503},
			want: "The service is having issues",
		},
		{
			name: "not authorized sentinel",
			err:  ErrNotAuthorized,
			want: "Set your tokens",
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp: connection refused"),
			want: "Check your internet connection",
		},
		{
			name: "unknown error",
			err:  errors.New("something odd"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestion(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("GetSuggestion() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("GetSuggestion() = %q, want containing %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	plain := Format(errors.New("something odd"))
	if plain != "Error: something odd" {
		t.Errorf("Format() = %q", plain)
	}

	withHint := Format(&api.Error{Status: 401})
	if !strings.Contains(withHint, "Suggestion:") {
		t.Errorf("Format() = %q, want suggestion line", withHint)
	}
}
