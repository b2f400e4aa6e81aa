package render

import "strings"

// EscapeHTMLAttr escapes a value for use inside a double-quoted HTML
// attribute.
func EscapeHTMLAttr(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for _, ch := range value {
		switch ch {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&#39;")
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// EscapeLinkText escapes brackets in markdown link text.
func EscapeLinkText(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for _, ch := range value {
		switch ch {
		case '\\', '[', ']':
			sb.WriteByte('\\')
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// EscapeLinkDestination escapes characters that would terminate a
// markdown link destination.
func EscapeLinkDestination(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for _, ch := range value {
		switch ch {
		case '\\', '(', ')', ' ':
			sb.WriteByte('\\')
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
