package extract

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mohini32/legal-AI-Reader/model"
)

// blockElements are HTML elements that introduce a line break around their
// text content.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "blockquote": true, "pre": true,
	"br": true, "hr": true, "table": true, "ul": true, "ol": true,
}

// skippedElements contain no document text.
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "head": true,
	"iframe": true, "svg": true,
}

// extractHTML extracts visible text from an HTML contract as a single
// segment, with block elements separated by newlines.
func extractHTML(data []byte) ([]string, []model.Warning, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var b strings.Builder
	collectHTMLText(root, &b)
	return []string{b.String()}, nil, nil
}

func collectHTMLText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && skippedElements[n.Data] {
		return
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString(" ")
			}
			b.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectHTMLText(c, b)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
	}
}
