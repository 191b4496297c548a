package markup

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML - DOM разбор вместо ручного поиска по сырому html
func ParseHTML(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// MetaContent возвращает content первого <meta> с property или name из списка (в порядке списка)
func MetaContent(doc *goquery.Document, props ...string) (string, bool) {
	for _, prop := range props {
		prop = strings.ToLower(prop)

		var found string

		doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			key := strings.ToLower(s.AttrOr("property", s.AttrOr("name", "")))
			if key != prop {
				return true
			}

			if content := strings.TrimSpace(s.AttrOr("content", "")); content != "" {
				found = content

				return false
			}

			return true
		})

		if found != "" {
			return found, true
		}
	}

	return "", false
}
