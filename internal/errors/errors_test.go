package errors

import (
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrNotFound, ExitUser),
			want: "not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(Wrap(ErrDuplicateEntry, "adding alias ll"), ExitUser),
			want: "adding alias ll: entry already exists",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(fmt.Errorf("parsing: %w", ErrMalformedEntry), ExitUser),
			wantTarget: ErrMalformedEntry,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrInvalidCommand,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestMark(t *testing.T) {
	err := Mark(Newf("path %s does not exist", "bin"), ErrNotFound)

	if !Is(err, ErrNotFound) {
		t.Error("Is() should find ErrNotFound on a marked error")
	}
	if Is(err, ErrDuplicateEntry) {
		t.Error("Is() should not match an unrelated sentinel")
	}
	if got := err.Error(); got != "path bin does not exist" {
		t.Errorf("Error() = %q, want message unchanged by marking", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid command", Wrap(ErrInvalidCommand, "alias"), ExitUser},
		{"not found", Mark(New("no shell config found"), ErrNotFound), ExitUser},
		{"home not set", ErrHomeNotSet, ExitUser},
		{"duplicate", ErrDuplicateEntry, ExitUser},
		{"malformed", ErrMalformedEntry, ExitUser},
		{"invalid config", ErrInvalidConfig, ExitUser},
		{"io failure", New("disk full"), ExitSystem},
		{"existing exit error", NewSystemError(ErrNotFound, "retry"), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got == nil {
				t.Fatal("Classify() returned nil for non-nil error")
			}
			if got.Code != tt.wantCode {
				t.Errorf("Classify().Code = %d, want %d", got.Code, tt.wantCode)
			}
		})
	}

	if Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}

func TestClassify_InvalidCommandSuggestion(t *testing.T) {
	got := Classify(ErrInvalidCommand)
	if got.Suggestion == "" {
		t.Error("expected a usage suggestion for invalid commands")
	}
}

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUser", ExitUser, 1},
		{"ExitSystem", ExitSystem, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.want)
			}
		})
	}
}
