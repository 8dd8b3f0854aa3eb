package summarize

import "strings"

// ExtractSentences is how many leading segments Extract keeps.
const ExtractSentences = 3

// Extract keeps the first few sentence-like segments of text. Segments end at
// a run of '.', '!' or '?'; trailing unterminated text is its own segment.
func Extract(text string) string {
	segments := splitSentences(text)
	if len(segments) > ExtractSentences {
		segments = segments[:ExtractSentences]
	}
	return strings.Join(segments, " ")
}

func splitSentences(text string) []string {
	var segments []string
	start := 0
	inTerminal := false

	for i, r := range text {
		terminal := r == '.' || r == '!' || r == '?'
		if inTerminal && !terminal {
			segments = appendSegment(segments, text[start:i])
			start = i
		}
		inTerminal = terminal
	}
	segments = appendSegment(segments, text[start:])

	if len(segments) == 0 {
		return []string{text}
	}
	return segments
}

func appendSegment(segments []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		segments = append(segments, s)
	}
	return segments
}
