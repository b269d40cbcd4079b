package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVideoURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want VideoInfo
	}{
		{
			"watch url",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			VideoInfo{Provider: "youtube", VideoID: "dQw4w9WgXcQ", EmbedURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		},
		{
			"short url",
			"https://youtu.be/dQw4w9WgXcQ",
			VideoInfo{Provider: "youtube", VideoID: "dQw4w9WgXcQ", EmbedURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		},
		{
			"shorts url",
			"https://www.youtube.com/shorts/dQw4w9WgXcQ",
			VideoInfo{Provider: "youtube", VideoID: "dQw4w9WgXcQ", EmbedURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		},
		{
			"watch url with playlist",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL12345abc",
			VideoInfo{Provider: "youtube", VideoID: "dQw4w9WgXcQ", PlaylistID: "PL12345abc", EmbedURL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		},
		{
			"playlist only",
			"https://www.youtube.com/playlist?list=PL12345abc",
			VideoInfo{Provider: "youtube", PlaylistID: "PL12345abc"},
		},
		{
			"vimeo",
			"https://vimeo.com/76979871",
			VideoInfo{Provider: "vimeo", VideoID: "76979871", EmbedURL: "https://player.vimeo.com/video/76979871"},
		},
		{
			"direct mp4",
			"https://cdn.example.com/aula.mp4",
			VideoInfo{Provider: "direct"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoURL(tt.url)
			assert.NoError(t, err)
			tt.want.URL = tt.url
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestParseVideoURLUnsupported(t *testing.T) {
	for _, url := range []string{"", "not a url", "https://example.com/page"} {
		_, err := ParseVideoURL(url)
		assert.ErrorIs(t, err, ErrUnsupportedURL, url)
	}
}
