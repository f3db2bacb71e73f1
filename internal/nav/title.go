package nav

import "regexp"

// headingRE matches a level-one ATX heading at the start of any line. The
// heading text must hold at least one non-space character.
var headingRE = regexp.MustCompile(`(?m)^# ([^\r\n]*\S[^\r\n]*)`)

// Title returns the text of the first "# " heading found anywhere in content.
// It is not limited to the first line of the file.
func Title(content []byte) (string, bool) {
	m := headingRE.FindSubmatch(content)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}
