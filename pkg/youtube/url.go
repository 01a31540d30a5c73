// Package youtube parses the YouTube URL forms users paste and reduces them
// to the canonical watch URL used as the stored video identity.
package youtube

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL indicates the input is not a recognizable YouTube video URL
var ErrInvalidURL = errors.New("not a valid YouTube video URL")

// videoIDPattern matches the 11-character YouTube video identifier
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID extracts the video identifier from any of the URL forms
// YouTube serves: youtu.be short links, watch URLs, /shorts/, /embed/ and
// /live/ paths. Tracking parameters (si, t, feature, ...) are ignored.
func ParseVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	// Bare video IDs are accepted as-is
	if videoIDPattern.MatchString(raw) {
		return raw, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtu.be":
		// https://youtu.be/<id>?si=...
		if id := firstPathSegment(u.Path); videoIDPattern.MatchString(id) {
			return id, nil
		}
	case "youtube.com", "m.youtube.com", "music.youtube.com", "youtube-nocookie.com":
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		switch segments[0] {
		case "watch":
			// https://www.youtube.com/watch?v=<id>
			if id := u.Query().Get("v"); videoIDPattern.MatchString(id) {
				return id, nil
			}
		case "shorts", "embed", "live", "v":
			// https://www.youtube.com/shorts/<id> and friends
			if len(segments) > 1 && videoIDPattern.MatchString(segments[1]) {
				return segments[1], nil
			}
		}
	}

	return "", ErrInvalidURL
}

// CanonicalURL returns the canonical watch URL for a video ID
func CanonicalURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// Canonicalize parses raw and returns the canonical watch URL together with
// the video ID. The canonical form, never the submitted one, is what gets
// persisted.
func Canonicalize(raw string) (canonicalURL, videoID string, err error) {
	videoID, err = ParseVideoID(raw)
	if err != nil {
		return "", "", err
	}
	return CanonicalURL(videoID), videoID, nil
}

// ThumbnailURL returns the default high-quality thumbnail for a video ID
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID)
}

// EmbedURL returns the iframe embed URL for a video, optionally starting at
// start seconds and stopping at end seconds (end of 0 means play through).
func EmbedURL(videoID string, start, end int) string {
	embed := fmt.Sprintf("https://www.youtube.com/embed/%s", videoID)
	params := url.Values{}
	if start > 0 {
		params.Set("start", fmt.Sprintf("%d", start))
	}
	if end > 0 {
		params.Set("end", fmt.Sprintf("%d", end))
	}
	if len(params) > 0 {
		embed += "?" + params.Encode()
	}
	return embed
}

func firstPathSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
