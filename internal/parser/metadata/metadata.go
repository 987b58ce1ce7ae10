// Package metadata is the last-resort extraction tier: generic page metadata
// tags. It carries no ingredients or instructions; it exists so an import
// never comes back completely empty when at least a title is discoverable.
package metadata

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"forkful/internal/domain"
	"forkful/internal/normalize"
)

// Extract reads title/description/image metadata. Returns nil when no title
// is present.
func Extract(doc *goquery.Document) *domain.ParsedRecipeData {
	title := metaContent(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return nil
	}

	data := &domain.ParsedRecipeData{
		Title:       title,
		Description: metaContent(doc, "og:description"),
	}
	if data.Description == "" {
		data.Description = metaContent(doc, "description")
	}
	if img := normalize.ImageURL(metaContent(doc, "og:image")); img != "" {
		data.ImageURLs = []string{img}
	}
	return data
}

func metaContent(doc *goquery.Document, key string) string {
	if v, ok := doc.Find(fmt.Sprintf(`meta[property="%s"]`, key)).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	if v, ok := doc.Find(fmt.Sprintf(`meta[name="%s"]`, key)).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
