package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeSourceNotFound, "no such source: %s", "svg/stone.svg")
	if got := err.Error(); !strings.Contains(got, "SOURCE_NOT_FOUND") || !strings.Contains(got, "svg/stone.svg") {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeOutputFailed, cause, "write %s", "block/stone.png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause must be reachable via errors.Is")
	}
	if !Is(err, ErrCodeOutputFailed) {
		t.Error("Is must match the outer code")
	}
	if GetCode(err) != ErrCodeOutputFailed {
		t.Errorf("GetCode = %q", GetCode(err))
	}
}

func TestIsOnPlainError(t *testing.T) {
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("plain errors carry no code")
	}
	if GetCode(stderrors.New("plain")) != "" {
		t.Error("GetCode on plain error must be empty")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidTileWidth, "tile width must be a positive integer")
	if got := UserMessage(err); strings.Contains(got, "INVALID_TILE_WIDTH") {
		t.Errorf("UserMessage must strip the code prefix: %q", got)
	}
	plain := stderrors.New("plain")
	if UserMessage(plain) != "plain" {
		t.Error("UserMessage must pass plain errors through")
	}
}

func TestValidateDestination(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"Valid", "block/stone.png", false},
		{"ValidNested", "item/dye/red.png", false},
		{"Empty", "", true},
		{"Absolute", "/etc/passwd", true},
		{"Traversal", "../outside.png", true},
		{"Backslash", "block\\stone.png", true},
		{"ControlChar", "block/\x01.png", true},
		{"TooLong", strings.Repeat("a", 501), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDestination(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDestination(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSourceName(t *testing.T) {
	if err := ValidateSourceName("stone_bricks"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	for _, bad := range []string{"", "..", "a\\b", "a\x00b"} {
		if err := ValidateSourceName(bad); err == nil {
			t.Errorf("ValidateSourceName(%q) must fail", bad)
		}
	}
}
