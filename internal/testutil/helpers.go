package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewChatCompletionServer returns a stub OpenAI-compatible
// chat-completions endpoint that answers every request with reply.
// The caller owns the server and must Close it.
func NewChatCompletionServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "deepseek-chat",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": reply,
					},
				},
			},
		})
	}))
}

// SampleBookInput builds a one-chapter [context, book] tuple in
// mdBook's stdin wire shape.
func SampleBookInput(t *testing.T, content string) string {
	t.Helper()

	chapter := map[string]interface{}{
		"name":         "Chapter 1",
		"content":      content,
		"number":       []int{1},
		"sub_items":    []interface{}{},
		"path":         "chapter_1.md",
		"source_path":  "chapter_1.md",
		"parent_names": []interface{}{},
	}
	tuple := []interface{}{
		map[string]interface{}{
			"root":           "/book",
			"config":         map[string]interface{}{"book": map[string]interface{}{"language": "en"}},
			"renderer":       "html",
			"mdbook_version": "0.4.40",
		},
		map[string]interface{}{
			"sections": []interface{}{map[string]interface{}{"Chapter": chapter}},
		},
	}

	data, err := json.Marshal(tuple)
	if err != nil {
		t.Fatalf("Failed to marshal sample input: %v", err)
	}
	return string(data)
}
