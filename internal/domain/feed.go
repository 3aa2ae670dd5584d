package domain

import (
	"encoding/xml"
	"strings"
)

// alertFeed accepts both Atom (<feed><entry>) and RSS (<rss><channel><item>)
// index shapes. encoding/xml matches local names regardless of namespace, so
// namespaced and bare entry tags decode alike.
type alertFeed struct {
	XMLName      xml.Name
	Entries      []feedEntry `xml:"entry"`
	ChannelItems []feedEntry `xml:"channel>item"`
	Items        []feedEntry `xml:"item"`
}

type feedEntry struct {
	Links []feedLink `xml:"link"`
}

type feedLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

// ExtractAlertLinks pulls CAP detail URLs out of an alert index feed, in
// feed order. The index is best-effort upstream: a body that fails to parse
// yields an empty list, not an error.
func ExtractAlertLinks(body []byte) []string {
	var feed alertFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil
	}

	entries := feed.Entries
	if len(entries) == 0 {
		entries = feed.ChannelItems
	}
	if len(entries) == 0 {
		entries = feed.Items
	}

	var links []string
	for _, entry := range entries {
		if link := extractLink(entry); link != "" {
			links = append(links, link)
		}
	}
	return links
}

// extractLink picks the best link from one feed entry: a link whose type
// attribute hints at an XML body, or whose address ends in the conventional
// /xml/ suffix, wins immediately. Failing that, the first href seen is
// remembered, and an RSS-style text link is the final fallback.
func extractLink(entry feedEntry) string {
	fallback := ""
	for _, link := range entry.Links {
		href := strings.TrimSpace(link.Href)
		if href != "" && (strings.Contains(link.Type, "xml") || strings.HasSuffix(href, "/xml/")) {
			return href
		}
		if href != "" && fallback == "" {
			fallback = href
		}
	}

	if fallback == "" {
		for _, link := range entry.Links {
			if txt := strings.TrimSpace(link.Text); txt != "" {
				fallback = txt
				break
			}
		}
	}
	return fallback
}
