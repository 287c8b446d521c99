package book

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Book is the root of an mdBook document tree.
type Book struct {
	Sections []Item
}

// Item is one entry in a book's table of contents. Exactly one of the
// variant fields is set: a chapter, a part title, or a separator.
type Item struct {
	Chapter   *Chapter
	PartTitle string
	Separator bool
}

// Chapter is a single document in the book, possibly with nested
// sub-chapters.
type Chapter struct {
	Name        string        `json:"name"`
	Content     string        `json:"content"`
	Number      SectionNumber `json:"number"`
	SubItems    []Item        `json:"sub_items"`
	Path        *string       `json:"path"`
	SourcePath  *string       `json:"source_path"`
	ParentNames []string      `json:"parent_names"`
}

// SectionNumber is a chapter's hierarchical section number, e.g. [1, 2]
// for chapter 1.2. Draft chapters have no number.
type SectionNumber []uint32

// String renders the number the way mdBook does: "1.2." with a trailing
// dot, or the empty string for unnumbered chapters.
func (n SectionNumber) String() string {
	if len(n) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range n {
		fmt.Fprintf(&sb, "%d.", part)
	}
	return sb.String()
}

type bookJSON struct {
	Sections      []Item    `json:"sections"`
	NonExhaustive *struct{} `json:"__non_exhaustive"`
}

// MarshalJSON serializes the book in mdBook's wire shape, including the
// __non_exhaustive marker mdBook emits for its own structs.
func (b Book) MarshalJSON() ([]byte, error) {
	sections := b.Sections
	if sections == nil {
		sections = []Item{}
	}
	return json.Marshal(bookJSON{Sections: sections})
}

// UnmarshalJSON parses mdBook's book JSON.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw bookJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Sections = raw.Sections
	return nil
}

// MarshalJSON serializes an item as mdBook's tagged union: a chapter
// object, the string "Separator", or a part title.
func (it Item) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(map[string]*Chapter{"Chapter": it.Chapter})
	case it.Separator:
		return json.Marshal("Separator")
	default:
		return json.Marshal(map[string]string{"PartTitle": it.PartTitle})
	}
}

// UnmarshalJSON parses an item from mdBook's tagged union encoding.
func (it *Item) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Separator" {
			return fmt.Errorf("unknown book item %q", tag)
		}
		*it = Item{Separator: true}
		return nil
	}

	var variants struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &variants); err != nil {
		return fmt.Errorf("parse book item: %w", err)
	}

	switch {
	case variants.Chapter != nil:
		*it = Item{Chapter: variants.Chapter}
	case variants.PartTitle != nil:
		*it = Item{PartTitle: *variants.PartTitle}
	default:
		return fmt.Errorf("book item has no recognized variant")
	}
	return nil
}

type chapterJSON Chapter

// MarshalJSON keeps mdBook-mandatory array fields non-null even when
// the Go slices are nil.
func (c Chapter) MarshalJSON() ([]byte, error) {
	out := chapterJSON(c)
	if out.SubItems == nil {
		out.SubItems = []Item{}
	}
	if out.ParentNames == nil {
		out.ParentNames = []string{}
	}
	return json.Marshal(out)
}

// WalkChapters visits every chapter in depth-first order, parents
// before their sub-chapters. Separators and part titles are skipped.
// Traversal stops at the first error.
func WalkChapters(items []Item, visit func(*Chapter) error) error {
	for i := range items {
		ch := items[i].Chapter
		if ch == nil {
			continue
		}
		if err := visit(ch); err != nil {
			return err
		}
		if err := WalkChapters(ch.SubItems, visit); err != nil {
			return err
		}
	}
	return nil
}
