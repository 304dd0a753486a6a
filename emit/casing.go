package emit

import "strings"

// ToPascalCase converts a snake_case resource name to PascalCase. Only '_'
// separates words and only ASCII lower case letters are capitalised; every
// other character is kept as is.
func ToPascalCase(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	upper := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		result.WriteByte(c)
		upper = false
	}
	return result.String()
}
