package chunk

import (
	"strings"
	"testing"
)

func TestSplit_Empty(t *testing.T) {
	chunks := Split("", 100)
	if len(chunks) != 0 {
		t.Errorf("Expected no chunks for empty text, got %d", len(chunks))
	}
}

func TestSplit_SingleChunk(t *testing.T) {
	text := "# Title\n\nSome paragraph text.\n"
	chunks := Split(text, 4000)

	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}

	if !strings.Contains(chunks[0], "# Title") {
		t.Errorf("Chunk missing title: %q", chunks[0])
	}

	if !strings.Contains(chunks[0], "Some paragraph text.") {
		t.Errorf("Chunk missing paragraph: %q", chunks[0])
	}
}

func TestSplit_BoundsChunkSize(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, strings.Repeat("x", 80))
	}
	text := strings.Join(lines, "\n")

	chunks := Split(text, 400)
	if len(chunks) < 2 {
		t.Fatalf("Expected multiple chunks, got %d", len(chunks))
	}

	// Each chunk stays within bound plus one line of slack
	for i, c := range chunks {
		if len(c) > 400+81 {
			t.Errorf("Chunk %d exceeds bound: %d chars", i, len(c))
		}
	}

	// No content lost
	joined := strings.Join(chunks, "")
	if strings.Count(joined, "x") != 50*80 {
		t.Errorf("Content lost during split: %d x's", strings.Count(joined, "x"))
	}
}

func TestSplit_KeepsCodeBlockIntact(t *testing.T) {
	code := "```go\n" + strings.Repeat("fmt.Println(\"line\")\n", 40) + "```"
	text := "Intro paragraph.\n\n" + code + "\n\nOutro."

	chunks := Split(text, 100)

	// The fenced block must land in a single chunk
	found := false
	for _, c := range chunks {
		if strings.Contains(c, "```go") {
			if strings.Count(c, "```") < 2 {
				t.Errorf("Code fence split across chunks: %q", c)
			}
			found = true
		}
	}
	if !found {
		t.Error("Code block not found in any chunk")
	}
}

func TestSplit_TrailingNewline(t *testing.T) {
	// The final newline terminates the last line, it is not a blank
	// line. Getting this wrong changes the chunk text and with it the
	// cache key of every chapter that ends in a newline.
	if got := Split("a\n", 4000); len(got) != 1 || got[0] != "a\n" {
		t.Errorf(`Split("a\n") = %q, want ["a\n"]`, got)
	}
	if got := Split("a\nb\n", 4000); len(got) != 1 || got[0] != "a\nb\n" {
		t.Errorf(`Split("a\nb\n") = %q, want ["a\nb\n"]`, got)
	}

	// A genuinely blank final line still becomes a paragraph break
	if got := Split("a\n\n", 4000); len(got) != 1 || got[0] != "a\n\n\n" {
		t.Errorf(`Split("a\n\n") = %q, want ["a\n\n\n"]`, got)
	}
}

func TestSplit_BlankLinesBecomeParagraphBreaks(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph."
	chunks := Split(text, 4000)

	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}

	if !strings.Contains(chunks[0], "First paragraph.\n\nSecond paragraph.") {
		t.Errorf("Paragraph break not preserved: %q", chunks[0])
	}
}

func TestSplit_DefaultMaxChars(t *testing.T) {
	chunks := Split("short text", 0)
	if len(chunks) != 1 {
		t.Errorf("Expected 1 chunk with default bound, got %d", len(chunks))
	}
}

func TestJoin(t *testing.T) {
	joined := Join([]string{"first\n", "second\n"})
	if joined != "first\nsecond\n" {
		t.Errorf("Unexpected join result: %q", joined)
	}
}

func TestJoin_AddsBreakAfterClosingFence(t *testing.T) {
	joined := Join([]string{"```go\ncode\n```", "next chunk\n"})
	if !strings.Contains(joined, "```\n\nnext chunk") {
		t.Errorf("Expected paragraph break after fence, got %q", joined)
	}
}
