package export

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func writeSitemap(file, baseURL string, pages []Page) error {
	base := strings.TrimRight(baseURL, "/")
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range pages {
		loc := base + p.Route
		if p.Route != "/" {
			loc += "/"
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: loc})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	data := append([]byte(xml.Header), out...)
	if err := os.WriteFile(file, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	return nil
}
