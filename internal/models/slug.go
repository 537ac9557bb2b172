package models

import "strings"

// Slugify normalizes an interest name into its unique slug form: lowercase,
// with every run of non-alphanumeric characters collapsed into one hyphen
// and no leading or trailing hyphens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
