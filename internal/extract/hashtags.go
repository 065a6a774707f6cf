package extract

import "regexp"

var hashtagRE = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// Hashtags returns every hashtag in the text, in order, without the "#"
// prefix. Repeats are kept.
func Hashtags(text string) []string {
	matches := hashtagRE.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
