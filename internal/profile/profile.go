package profile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxAboutLength   = 1000
	UserInfoFileName = "user.json"
)

var (
	ErrProfileIncomplete  = errors.New("profile avatar and about text are both required")
	ErrSubmissionInFlight = errors.New("a profile submission is already in progress")
	ErrAvatarNotImage     = errors.New("avatar is not an image")
)

// UserInfo is the owner profile document kept in point storage. Avatar is a data url.
type UserInfo struct {
	Avatar string `json:"avatar"`
	About  string `json:"about"`
}

func (u *UserInfo) Complete() bool {
	return u != nil && u.Avatar != "" && u.About != ""
}

// AboutLength counts the about text in UTF-16 code units, the length browsers count.
func AboutLength(about string) int {
	units := 0
	for _, r := range about {
		units += utf16RuneLen(r)
	}
	return units
}

// TruncateAbout caps the about text at MaxAboutLength code units. A character that would
// cross the cap is dropped whole.
func TruncateAbout(about string) string {
	units := 0
	for i, r := range about {
		n := utf16RuneLen(r)
		if units+n > MaxAboutLength {
			return about[:i]
		}
		units += n
	}
	return about
}

func utf16RuneLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// AvatarDataURL encodes raw image bytes as a data url. Non image content is refused.
func AvatarDataURL(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrAvatarNotImage, mt.String())
	}
	return fmt.Sprintf("data:%s;base64,%s", mt.String(), base64.StdEncoding.EncodeToString(data)), nil
}

// NormalizeAvatar validates an avatar given as a base64 data url and re-encodes it with
// the detected image type.
func NormalizeAvatar(dataURL string) (string, error) {
	if dataURL == "" {
		return "", nil
	}
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", fmt.Errorf("%w: not a base64 data url", ErrAvatarNotImage)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrAvatarNotImage, err)
	}
	return AvatarDataURL(data)
}
