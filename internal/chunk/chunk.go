package chunk

import "strings"

// DefaultMaxChars is the default chunk size bound in characters.
const DefaultMaxChars = 4000

// Split breaks text into chunks of at most maxChars characters, on line
// boundaries. Fenced code blocks are kept intact even when that pushes a
// chunk past the bound. Blank lines are folded into a paragraph break so
// the chunk reads as normal Markdown.
func Split(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if text == "" {
		return nil
	}

	var chunks []string
	var buffer strings.Builder
	inCode := false

	// A trailing newline must not count as an extra blank line: each
	// line below gets its "\n" back, so the final one is dropped here.
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if line == "" {
			buffer.WriteString("\n\n")
			continue
		}

		if strings.HasPrefix(line, "```") {
			buffer.WriteString(line)
			buffer.WriteString("\n")
			inCode = !inCode
			continue
		}

		if inCode || buffer.Len()+len(line) < maxChars {
			buffer.WriteString(line)
			buffer.WriteString("\n")
		} else {
			chunks = append(chunks, buffer.String())
			buffer.Reset()
			buffer.WriteString(line)
			buffer.WriteString("\n")
		}
	}

	if buffer.Len() > 0 {
		chunks = append(chunks, buffer.String())
	}

	return chunks
}

// Join reassembles translated chunks into chapter content. A chunk that
// ends on a closing code fence gets a paragraph break so the fence does
// not run into the next chunk's first line.
func Join(chunks []string) string {
	var content strings.Builder
	for _, c := range chunks {
		content.WriteString(c)
		if strings.HasSuffix(c, "```") {
			content.WriteString("\n\n")
		}
	}
	return content.String()
}
