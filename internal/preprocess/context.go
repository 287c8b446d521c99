package preprocess

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"

	"github.com/BUB97/mdbook-translator/internal"
	"github.com/BUB97/mdbook-translator/internal/book"
)

// Name is the preprocessor name as it appears in book.toml
// ([preprocessor.translator]).
const Name = "translator"

// Context is the preprocessor context mdBook sends alongside the book.
type Context struct {
	Root          string          `json:"root"`
	Config        json.RawMessage `json:"config"`
	Renderer      string          `json:"renderer"`
	MdBookVersion string          `json:"mdbook_version"`
}

// ParseInput decodes the [context, book] tuple from r.
func ParseInput(r io.Reader) (*Context, *book.Book, error) {
	var tuple [2]json.RawMessage
	if err := json.NewDecoder(r).Decode(&tuple); err != nil {
		return nil, nil, fmt.Errorf("failed to parse preprocessor input: %w", err)
	}

	var ctx Context
	if err := json.Unmarshal(tuple[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to parse preprocessor context: %w", err)
	}

	var b book.Book
	if err := json.Unmarshal(tuple[1], &b); err != nil {
		return nil, nil, fmt.Errorf("failed to parse book: %w", err)
	}

	return &ctx, &b, nil
}

// WriteOutput emits the processed book on w. This is the only write to
// stdout the whole program performs.
func WriteOutput(w io.Writer, b *book.Book) error {
	if err := json.NewEncoder(w).Encode(b); err != nil {
		return fmt.Errorf("failed to write processed book: %w", err)
	}
	return nil
}

// CheckVersion warns when the calling mdBook does not satisfy the
// version range this preprocessor was built against. A mismatch never
// fails the build; the wire format has been stable across 0.4.x.
func (c *Context) CheckVersion(logger *logrus.Logger) {
	constraint, err := semver.NewConstraint(internal.MdBookVersionReq)
	if err != nil {
		return
	}

	version, err := semver.NewVersion(c.MdBookVersion)
	if err != nil {
		logger.WithField("mdbook_version", c.MdBookVersion).
			Warn("Could not parse mdBook version")
		return
	}

	if !constraint.Check(version) {
		logger.WithFields(logrus.Fields{
			"mdbook_version": c.MdBookVersion,
			"built_against":  internal.MdBookVersionReq,
		}).Warn("The translator plugin was built against a different mdbook version")
	}
}
