// Package mimetypes classifies attachments by their media type so that
// templates can choose how to display them.
package mimetypes

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWEBP MIME = "image/webp"

	VideoMP4  MIME = "video/mp4"
	VideoWEBM MIME = "video/webm"

	AudioMPEG MIME = "audio/mpeg"
	AudioOGG  MIME = "audio/ogg"
	AudioWAV  MIME = "audio/wav"
)

var (
	images = []string{string(ImagePNG), string(ImageJPEG), string(ImageGIF), string(ImageWEBP)}
	videos = []string{string(VideoMP4), string(VideoWEBM)}
	audios = []string{string(AudioMPEG), string(AudioOGG), string(AudioWAV)}
)

// Resolve returns the declared content type, or guesses it from the file
// extension when none was declared.
func Resolve(contentType, fileName string) MIME {
	if contentType != "" {
		return MIME(contentType)
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); byExt != "" {
		return MIME(byExt)
	}
	return Unknown
}

// IsImage ignores media type parameters, "image/png; q=1" is an image.
func IsImage(m MIME) bool {
	return mimetype.EqualsAny(string(m), images...)
}

func IsVideo(m MIME) bool {
	return mimetype.EqualsAny(string(m), videos...)
}

func IsAudio(m MIME) bool {
	return mimetype.EqualsAny(string(m), audios...)
}
