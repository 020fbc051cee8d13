package types

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Platform identifies a target social platform
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformX         Platform = "x"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformPinterest Platform = "pinterest"
	PlatformThreads   Platform = "threads"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedIn"
	PlatformSnapchat  Platform = "snapchat"
)

var allPlatforms = []Platform{
	PlatformYouTube,
	PlatformX,
	PlatformFacebook,
	PlatformTikTok,
	PlatformPinterest,
	PlatformThreads,
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformSnapchat,
}

// AllPlatforms returns every supported platform in declaration order
func AllPlatforms() []Platform {
	out := make([]Platform, len(allPlatforms))
	copy(out, allPlatforms)
	return out
}

// ParsePlatform matches a platform identifier case-insensitively
func ParsePlatform(s string) (Platform, error) {
	s = strings.TrimSpace(s)
	for _, p := range allPlatforms {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

func (p Platform) String() string {
	return string(p)
}

// MinTitleLength is the shortest title accepted for a post
const MinTitleLength = 3

// VideoPayload is one video to publish
type VideoPayload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Video       string `json:"video"`           // local file path
	Image       string `json:"image,omitempty"` // thumbnail path
	URL         string `json:"url,omitempty"`
	SourceID    string `json:"sourceId,omitempty"`
}

// Validate checks the caller-side preconditions of a payload
func (v VideoPayload) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(v.Title)) < MinTitleLength {
		return &ValidationError{Field: "title", Reason: fmt.Sprintf("must be at least %d characters", MinTitleLength)}
	}
	if strings.TrimSpace(v.Video) == "" {
		return &ValidationError{Field: "video", Reason: "path is required"}
	}
	if v.URL != "" {
		u, err := url.ParseRequestURI(v.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ValidationError{Field: "url", Reason: fmt.Sprintf("not a valid URL: %q", v.URL)}
		}
	}
	return nil
}

// UploadOutcome is the result of one platform's upload sequence
type UploadOutcome struct {
	Platform   Platform  `json:"platform"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	Err        error     `json:"-"`
	Posts      int       `json:"posts"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Duration returns how long the platform's sequence ran
func (o UploadOutcome) Duration() time.Duration {
	if o.FinishedAt.IsZero() {
		return 0
	}
	return o.FinishedAt.Sub(o.StartedAt)
}
