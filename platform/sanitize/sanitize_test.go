package sanitize

import "testing"

func TestSanitizers(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"strip tags", Text, "<b>Hello</b> world", "Hello world"},
		{"encoded tags", Text, "&lt;script&gt;alert(1)&lt;/script&gt;hi", "alert(1)hi"},
		{"keeps newlines in text", Text, "line one\nline two", "line one\nline two"},
		{"line collapses newlines", Line, "Acme\r\nBcc: evil@example.com", "Acme Bcc: evil@example.com"},
		{"line trims", Line, "   Ada   Lovelace  ", "Ada Lovelace"},
		{"email lowercases", Email, "  Ada@Example.COM ", "ada@example.com"},
	}

	for _, tc := range cases {
		if got := tc.fn(tc.in); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
