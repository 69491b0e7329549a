package bloglib

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

// validateFeed checks that the rendered feed is a well-formed XML document
// with an rss or feed root element.
func validateFeed(b []byte) error {
	m, err := mxj.NewMapXml(b)
	if err != nil {
		return fmt.Errorf("feed.xml is not well-formed XML: %w", err)
	}

	root, err := m.Root()
	if err != nil {
		return fmt.Errorf("feed.xml: %w", err)
	}

	switch root {
	case "rss", "feed":
		return nil
	default:
		return fmt.Errorf("feed.xml: unexpected root element %q, expected rss or feed", root)
	}
}
