package extract

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]any
	}{
		{
			name: "bare object",
			text: `{"html":"<p>hi</p>","css":"p{color:red}","js":"x()"}`,
			want: map[string]any{"html": "<p>hi</p>", "css": "p{color:red}", "js": "x()"},
		},
		{
			name: "markdown fenced",
			text: "Sure! ```json\n{\"html\":\"<p>hi</p>\",\"css\":\"p{color:red}\",\"js\":\"\"}\n```",
			want: map[string]any{"html": "<p>hi</p>", "css": "p{color:red}", "js": ""},
		},
		{
			name: "surrounded by prose",
			text: "Here is your page:\n{\"html\":\"a\",\"css\":\"b\",\"js\":\"c\"}\nEnjoy!",
			want: map[string]any{"html": "a", "css": "b", "js": "c"},
		},
		{
			name: "leading and trailing whitespace",
			text: "\n\n  {\"html\":\"a\"}  \n",
			want: map[string]any{"html": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			if err := FirstObject(tt.text, &got); err != nil {
				t.Fatalf("FirstObject(%q) returned error: %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FirstObject(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFirstObjectNoStructure(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "plain prose", text: "I could not generate that page."},
		{name: "only opening brace", text: "some text {"},
		{name: "only closing brace", text: "} some text"},
		{name: "closing before opening", text: "} nothing here {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			err := FirstObject(tt.text, &got)
			if !errors.Is(err, ErrNoStructure) {
				t.Errorf("FirstObject(%q) error = %v, want ErrNoStructure", tt.text, err)
			}
		})
	}
}

func TestFirstObjectMalformed(t *testing.T) {
	text := "reply: {html: not quoted} done"

	var got map[string]any
	err := FirstObject(text, &got)

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("FirstObject(%q) error = %v, want *MalformedError", text, err)
	}
	if malformed.Span != "{html: not quoted}" {
		t.Errorf("MalformedError.Span = %q, want the original brace span", malformed.Span)
	}
	if !strings.HasPrefix(malformed.Error(), "malformed JSON") {
		t.Errorf("MalformedError.Error() = %q, want a malformed JSON message", malformed.Error())
	}
}

// The outermost-brace slice deliberately does not balance braces: prose
// containing a brace after the object corrupts the span. The retry flow
// depends on this failing rather than being silently repaired.
func TestFirstObjectBraceInTrailingProse(t *testing.T) {
	text := `{"html":"a","css":"b","js":"c"} and remember css uses {braces}`

	var got map[string]any
	err := FirstObject(text, &got)

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("FirstObject(%q) error = %v, want *MalformedError", text, err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{name: "shorter than limit", s: "abc", n: 10, want: "abc"},
		{name: "exactly at limit", s: "abcde", n: 5, want: "abcde"},
		{name: "over limit", s: "abcdef", n: 3, want: "abc"},
		{name: "multibyte runes", s: "héllo wörld", n: 5, want: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}
