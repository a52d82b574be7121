package linkscan

import (
	"net/url"
	"sort"
	"strings"

	"github.com/antchfx/htmlquery"
)

// ExtractLinks parses content as HTML and returns every anchor target
// resolved against base, deduplicated and sorted. The parse is
// lenient: malformed markup yields whatever anchors are still
// recognizable rather than an error. Anchors without an href and
// hrefs that do not parse are skipped.
func ExtractLinks(base, content string) []string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}
	doc, err := htmlquery.Parse(strings.NewReader(content))
	if err != nil {
		// html.Parse only fails when the reader does, and a
		// strings.Reader never does.
		return nil
	}
	seen := map[string]struct{}{}
	for _, n := range htmlquery.Find(doc, "//a[@href]") {
		ref, err := url.Parse(htmlquery.SelectAttr(n, "href"))
		if err != nil {
			continue
		}
		seen[baseURL.ResolveReference(ref).String()] = struct{}{}
	}
	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)
	return links
}
