package mdpage

import "strings"

// stripFrontMatter drops a leading front-matter block. The block must open
// with ---, +++ or ;;; on the first line, carry metadata-looking content on
// the second line and be closed by the same delimiter. Otherwise lines are
// returned unchanged.
func stripFrontMatter(lines []string) []string {
	if len(lines) < 3 {
		return lines
	}
	delim, ok := openingFrontMatterDelimiter(lines[0])
	if !ok || !frontMatterMetadataLikely(lines[1]) {
		return lines
	}
	for i := 2; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return lines[i+1:]
		}
	}
	return lines
}

func openingFrontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}
