package mediaurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"My Photo.jpg", "My%20Photo.jpg"},
		{"a/b", "a%2Fb"},
		{"café", "caf%C3%A9"},
		{"2024-01-01T00:00:00Z", "2024-01-01T00%3A00%3A00Z"},
		{"it's(1)!*~_-.", "it's(1)!*~_-."},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, encodeComponent(tt.in), "encodeComponent(%q)", tt.in)
	}
}

func TestEncodePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "/media/photo.jpg", "/media/photo.jpg"},
		{"space", "/media/My Photo.jpg", "/media/My%20Photo.jpg"},
		{"already encoded", "/media/My%20Photo.jpg", "/media/My%20Photo.jpg"},
		{"query untouched", "/media/My Photo.jpg?w=1 0&x", "/media/My%20Photo.jpg?w=1 0&x"},
		{"bad escape encoded raw", "/media/100%.jpg", "/media/100%25.jpg"},
		{"empty segments kept", "//media//a.jpg", "//media//a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodePath(tt.in))
		})
	}
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "photo.jpg", lastSegment("/bucket/photo.jpg"))
	assert.Equal(t, "photo.jpg", lastSegment("/bucket/photo.jpg/"))
	assert.Equal(t, "", lastSegment("/"))
	assert.Equal(t, "", lastSegment(""))
}
