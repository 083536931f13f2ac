package transform

import "regexp"

// ReadmePath is the README edited by ReadmeTrim.
const ReadmePath = "README.md"

// quickStartSection matches from a "* * *" marker line through the Quick Start
// heading and its content up to and including the next marker line.
var quickStartSection = regexp.MustCompile(`(?s)\*\s\*\s\*(?:\r?\n)+## \*\*Quick Start\*\*.*?\r?\n\*\s\*\s\*`)

// ReadmeTrim removes the starter's Quick Start section from README.md.
func ReadmeTrim() Transform {
	return Transform{
		Name:    ReadmePath,
		RelPath: ReadmePath,
		Edit: func(_ Params, content []byte) ([]byte, error) {
			return TrimQuickStart(content), nil
		},
	}
}

// TrimQuickStart removes every Quick Start section. Content without one is returned unchanged.
func TrimQuickStart(content []byte) []byte {
	if !quickStartSection.Match(content) {
		return content
	}
	return quickStartSection.ReplaceAll(content, nil)
}
