package domain

import (
	"encoding/xml"
	"strings"
)

// capDocument decodes a CAP 1.2 alert. The alert element is usually the
// document root, but some brokers nest it under a wrapper element, so both
// placements are accepted.
type capDocument struct {
	XMLName    xml.Name
	Identifier string    `xml:"identifier"`
	Infos      []capInfo `xml:"info"`
	Nested     *capAlert `xml:"alert"`
}

type capAlert struct {
	Identifier string    `xml:"identifier"`
	Infos      []capInfo `xml:"info"`
}

type capInfo struct {
	Language    string   `xml:"language"`
	Event       string   `xml:"event"`
	Severity    string   `xml:"severity"`
	Onset       string   `xml:"onset"`
	Expires     string   `xml:"expires"`
	Headline    string   `xml:"headline"`
	Description string   `xml:"description"`
	Urgency     string   `xml:"urgency"`
	Certainty   string   `xml:"certainty"`
	Area        *capArea `xml:"area"`
}

type capArea struct {
	AreaDesc string `xml:"areaDesc"`
}

// ParseCAPAlert parses one CAP alert document, resolving the info block that
// best matches the preferred language. It returns nil — not an error — when
// the document is malformed, has no alert element, or has no info blocks;
// the caller drops such alerts silently. sourceURL is kept as the alert's
// attribution link. The identifier comes from the alert root, not the info
// block.
func ParseCAPAlert(body []byte, sourceURL, preferredLang string) *Alert {
	var doc capDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil
	}

	identifier := text(doc.Identifier)
	infos := doc.Infos
	if doc.XMLName.Local != "alert" {
		if doc.Nested == nil {
			return nil
		}
		identifier = text(doc.Nested.Identifier)
		infos = doc.Nested.Infos
	}
	if len(infos) == 0 {
		return nil
	}

	info := selectInfoBlock(infos, preferredLang)

	alert := &Alert{
		Identifier:   identifier,
		Event:        text(info.Event),
		Severity:     text(info.Severity),
		SeverityTier: SeverityTier(text(info.Severity)),
		Onset:        text(info.Onset),
		Expires:      text(info.Expires),
		Headline:     text(info.Headline),
		Description:  text(info.Description),
		Urgency:      text(info.Urgency),
		Certainty:    text(info.Certainty),
		Link:         sourceURL,
	}
	if info.Area != nil {
		alert.AreaDesc = text(info.Area.AreaDesc)
	}
	return alert
}

// selectInfoBlock scans info blocks in document order and returns the first
// whose language code starts with the preferred language, case-insensitively
// ("is-IS" matches preference "is"). With no match the first block is the
// fallback: every document with at least one info block yields an alert.
func selectInfoBlock(infos []capInfo, preferredLang string) capInfo {
	pref := strings.ToLower(preferredLang)
	for _, info := range infos {
		lang := strings.ToLower(text(info.Language))
		if strings.HasPrefix(lang, pref) {
			return info
		}
	}
	return infos[0]
}
