package youtube

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrUnsupportedURL = errors.New("unsupported video URL")

var (
	youtubeVideoRe    = regexp.MustCompile(`(?:youtube\.com/watch\?.*v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([A-Za-z0-9_-]{11})`)
	youtubePlaylistRe = regexp.MustCompile(`[?&]list=([A-Za-z0-9_-]+)`)
	vimeoRe           = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// VideoInfo is the normalized result of parsing a pasted video URL.
type VideoInfo struct {
	Provider   string `json:"provider"`
	VideoID    string `json:"video_id,omitempty"`
	PlaylistID string `json:"playlist_id,omitempty"`
	EmbedURL   string `json:"embed_url,omitempty"`
	URL        string `json:"url"`
}

// ParseVideoURL classifies a URL as YouTube, Vimeo or a direct file and
// extracts the provider ids.
func ParseVideoURL(rawURL string) (*VideoInfo, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrUnsupportedURL
	}

	info := &VideoInfo{URL: rawURL}

	if m := youtubeVideoRe.FindStringSubmatch(rawURL); m != nil {
		info.Provider = "youtube"
		info.VideoID = m[1]
		info.EmbedURL = "https://www.youtube.com/embed/" + m[1]
		if pl := youtubePlaylistRe.FindStringSubmatch(rawURL); pl != nil {
			info.PlaylistID = pl[1]
		}
		return info, nil
	}

	if m := youtubePlaylistRe.FindStringSubmatch(rawURL); m != nil && strings.Contains(rawURL, "youtube.com") {
		info.Provider = "youtube"
		info.PlaylistID = m[1]
		return info, nil
	}

	if m := vimeoRe.FindStringSubmatch(rawURL); m != nil {
		info.Provider = "vimeo"
		info.VideoID = m[1]
		info.EmbedURL = "https://player.vimeo.com/video/" + m[1]
		return info, nil
	}

	lower := strings.ToLower(rawURL)
	if strings.HasSuffix(lower, ".mp4") || strings.HasSuffix(lower, ".webm") || strings.HasSuffix(lower, ".ogg") {
		info.Provider = "direct"
		return info, nil
	}

	return nil, ErrUnsupportedURL
}

// OEmbedInfo is the subset of the YouTube oEmbed payload the frontend uses.
type OEmbedInfo struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
	ProviderName string `json:"provider_name"`
}

type Service struct {
	http *resty.Client
}

func NewService() *Service {
	return &Service{http: resty.New().SetTimeout(10 * time.Second)}
}

// FetchOEmbed pulls title and thumbnail metadata for a YouTube URL.
func (s *Service) FetchOEmbed(ctx context.Context, videoURL string) (*OEmbedInfo, error) {
	var out OEmbedInfo
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("url", videoURL).
		SetQueryParam("format", "json").
		SetResult(&out).
		Get("https://www.youtube.com/oembed")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oembed lookup failed: status %d", resp.StatusCode())
	}
	return &out, nil
}
