package transform

import "regexp"

// TitlePath is the source file whose game title is replaced.
const TitlePath = "src/data.js"

// titleAssignment matches `title:` or `title =` followed by a quoted string.
// Group 1 ends at the opening quote and group 2 is the closing quote.
var titleAssignment = regexp.MustCompile("(title\\s*[:=]\\s*['\"`]).*?(['\"`])")

// TitleSubstitution writes the project name into the game title in src/data.js.
func TitleSubstitution() Transform {
	return Transform{
		Name:    TitlePath,
		RelPath: TitlePath,
		Edit: func(p Params, content []byte) ([]byte, error) {
			return ReplaceTitle(content, p.ProjectName), nil
		},
	}
}

// ReplaceTitle replaces the quoted content of the first title assignment with
// title. Later matches are left alone.
func ReplaceTitle(content []byte, title string) []byte {
	loc := titleAssignment.FindSubmatchIndex(content)
	if loc == nil {
		return content
	}
	openEnd, closeStart := loc[3], loc[4]
	out := make([]byte, 0, len(content)-(closeStart-openEnd)+len(title))
	out = append(out, content[:openEnd]...)
	out = append(out, title...)
	out = append(out, content[closeStart:]...)
	return out
}
