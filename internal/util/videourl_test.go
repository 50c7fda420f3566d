package util

import "testing"

func TestNormalizeVideoURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=abc", "https://www.youtube.com/embed/abc"},
		{"https://m.youtube.com/watch?v=abc", "https://www.youtube.com/embed/abc"},
		{"https://youtu.be/abc123", "https://www.youtube.com/embed/abc123"},
		{"https://www.youtube.com/shorts/xyz789", "https://www.youtube.com/embed/xyz789"},
		{"https://drive.google.com/file/d/FILE_ID/view?usp=sharing", "https://drive.google.com/file/d/FILE_ID/preview"},
		{"https://drive.google.com/file/d/FILE_ID/preview", "https://drive.google.com/file/d/FILE_ID/preview"},
		// Already-embeddable and unrelated URLs pass through untouched.
		{"https://www.youtube.com/embed/abc", "https://www.youtube.com/embed/abc"},
		{"https://vimeo.com/12345", "https://vimeo.com/12345"},
		{"not a url", "not a url"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeVideoURL(tc.in); got != tc.want {
			t.Fatalf("NormalizeVideoURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
