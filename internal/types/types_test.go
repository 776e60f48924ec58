package types

import (
	"strings"
	"testing"
)

func TestCodeBundleValidate(t *testing.T) {
	tests := []struct {
		name    string
		bundle  CodeBundle
		wantErr string // substring of the error, empty means valid
	}{
		{
			name:   "complete bundle",
			bundle: CodeBundle{HTML: "<h1>x</h1>", CSS: "h1{}", JS: "void 0"},
		},
		{
			name:    "missing html",
			bundle:  CodeBundle{CSS: "h1{}", JS: "void 0"},
			wantErr: `"html"`,
		},
		{
			name:    "missing css",
			bundle:  CodeBundle{HTML: "<h1>x</h1>", JS: "void 0"},
			wantErr: `"css"`,
		},
		{
			name:    "empty js",
			bundle:  CodeBundle{HTML: "<h1>x</h1>", CSS: "h1{}", JS: ""},
			wantErr: `"js"`,
		},
		{
			name:    "all empty",
			bundle:  CodeBundle{},
			wantErr: `"html"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error naming %s", err, tt.wantErr)
			}
		})
	}
}

func TestNewGenerationError(t *testing.T) {
	long := strings.Repeat("x", RawResponseLimit+500)
	genErr := NewGenerationError("backend unreachable", long)

	if genErr.ErrorType != ErrorTypeGeneration {
		t.Errorf("ErrorType = %q, want %q", genErr.ErrorType, ErrorTypeGeneration)
	}
	if genErr.Error != "backend unreachable" {
		t.Errorf("Error = %q, want the supplied message", genErr.Error)
	}
	if len(genErr.RawResponse) != RawResponseLimit {
		t.Errorf("RawResponse length = %d, want %d", len(genErr.RawResponse), RawResponseLimit)
	}
}
