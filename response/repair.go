package response

import "strings"

// repairJSON restores a missing opening quote before object keys, a common
// defect in output from small models: `{id": "a"}` becomes `{"id": "a"}`.
// Text that does not show the defect is returned unchanged.
func repairJSON(s string) string {
	src := []rune(s)
	var out strings.Builder
	out.Grow(len(s) + 16)

	i := 0
	for i < len(src) {
		ch := src[i]
		out.WriteRune(ch)
		i++
		if ch != '{' && ch != ',' {
			continue
		}

		for i < len(src) && isSpace(src[i]) {
			out.WriteRune(src[i])
			i++
		}
		if i >= len(src) || !isLetter(src[i]) {
			continue
		}

		start := i
		for i < len(src) && isKeyRune(src[i]) {
			i++
		}

		// A bare word directly followed by `":` lost its opening quote
		if i+1 < len(src) && src[i] == '"' && src[i+1] == ':' {
			out.WriteRune('"')
			out.WriteString(strings.TrimSpace(string(src[start:i])))
			continue
		}
		out.WriteString(string(src[start:i]))
	}

	return out.String()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isKeyRune(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9') || r == '_' || r == ' '
}
