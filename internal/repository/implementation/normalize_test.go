package implementation

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare number", input: "01712345678", want: "tel:01712345678"},
		{name: "already prefixed", input: "tel:01712345678", want: "tel:01712345678"},
		{name: "empty stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePhone(tt.input); got != tt.want {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhatsapp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare number", input: "8801712345678", want: "https://wa.me/8801712345678"},
		{name: "already a link", input: "https://wa.me/8801712345678", want: "https://wa.me/8801712345678"},
		{name: "empty stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWhatsapp(tt.input); got != tt.want {
				t.Errorf("normalizeWhatsapp(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhotoLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty gets placeholder", input: "", want: DefaultPhotoLink},
		{name: "whitespace gets placeholder", input: "   ", want: DefaultPhotoLink},
		{name: "real link kept", input: "https://example.com/p.jpg", want: "https://example.com/p.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePhotoLink(tt.input); got != tt.want {
				t.Errorf("normalizePhotoLink(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
