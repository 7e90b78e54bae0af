package common

import (
	"path/filepath"
	"strings"
)

// Platform identifies one external social network a post can target.
type Platform string

const (
	PlatformTwitter   Platform = "xtwitter"
	PlatformLinkedin  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformPinterest Platform = "pinterest"
)

// Platforms lists every platform a post document may carry a sub-document for.
var Platforms = []Platform{PlatformTwitter, PlatformLinkedin, PlatformInstagram, PlatformPinterest}

// String returns the string representation
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the platform is one of the enumerated set
func (p Platform) IsValid() bool {
	switch p {
	case PlatformTwitter, PlatformLinkedin, PlatformInstagram, PlatformPinterest:
		return true
	}
	return false
}

// PostStatus is the lifecycle state of a post document. Transitions are
// monotonic: draft/scheduled advance to posted or failed and never regress.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusScheduled PostStatus = "scheduled"
	StatusPosted    PostStatus = "posted"
	StatusFailed    PostStatus = "failed"
)

func (ps PostStatus) String() string {
	return string(ps)
}

// Terminal reports whether the status can no longer advance.
func (ps PostStatus) Terminal() bool {
	return ps == StatusPosted || ps == StatusFailed
}

// MediaFileType represents the coarse media category platforms care about
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

// String returns the string representation
func (mft MediaFileType) String() string {
	return string(mft)
}

// IsValid checks if the media file type is valid
func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// DetectFileType derives the media category from a file path extension.
func DetectFileType(path string) MediaFileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".webm":
		return MediaFileTypeVideo
	}
	return MediaFileTypeImage // Default fallback
}

// DetectMimeType derives the upload MIME type from a file path extension.
func DetectMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
