package activity

import (
	"regexp"
	"strings"
	"unicode"
)

var customEmoji = regexp.MustCompile(`<a?:\w+:\d+>`)

// surgeEmoji are the unicode emoji counted toward an emoji surge
var surgeEmoji = func() map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range "😀😃😄😁😆😅😂🙂😉😊😍😘😜🤪😎🤩🥳😤😭😡😱👍👎👏🙌🔥✨💥💯💀😈😇👀🫡🫠🫶🤝🤙🙏🫥🫨😮💨" {
		set[r] = true
	}
	return set
}()

// IsAlphanumeric reports content made only of ASCII letters and digits
func IsAlphanumeric(content string) bool {
	t := strings.TrimSpace(content)
	if t == "" {
		return false
	}
	for _, r := range t {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// ThetaCount counts case-insensitive occurrences of "theta"
func ThetaCount(content string) int {
	return strings.Count(strings.ToLower(content), "theta")
}

// IsCapsScream reports shouting: at least 10 characters, no lowercase
// letters, and at least 90% of the non-space runes are uppercase letters
// or !?.-
func IsCapsScream(content string) bool {
	t := strings.TrimSpace(content)
	if len([]rune(t)) < ScreamMinLength {
		return false
	}

	nonSpace, letters, loud := 0, 0, 0
	for _, r := range t {
		if unicode.IsSpace(r) {
			continue
		}
		nonSpace++
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsLower(r) {
				return false
			}
			if unicode.IsUpper(r) {
				loud++
			}
			continue
		}
		if strings.ContainsRune("!?.-", r) {
			loud++
		}
	}
	if nonSpace == 0 || letters == 0 {
		return false
	}
	return float64(loud)/float64(nonSpace) >= ScreamMinRatio
}

// EmojiCount counts custom emoji tags plus the surge unicode set
func EmojiCount(content string) int {
	n := len(customEmoji.FindAllStringIndex(content, -1))
	for _, r := range content {
		if surgeEmoji[r] {
			n++
		}
	}
	return n
}

// IsGIF reports a .gif attachment or a tenor/giphy link
func IsGIF(content string, attachments []string) bool {
	for _, a := range attachments {
		if strings.HasSuffix(strings.ToLower(a), ".gif") {
			return true
		}
	}
	lower := strings.ToLower(content)
	return strings.Contains(lower, "tenor.com") || strings.Contains(lower, "giphy.com")
}
