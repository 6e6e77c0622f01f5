package domain

import "strings"

// MediaResolver turns CMS media URLs into absolute URLs.
type MediaResolver struct {
	Base string
}

// Resolve returns url unchanged when it is empty or already absolute, and
// prefixes Base otherwise.
func (m MediaResolver) Resolve(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	base := strings.TrimSuffix(m.Base, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return base + url
}

// ResolveAll resolves the URL of every image.
func (m MediaResolver) ResolveAll(images []Image) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, m.Resolve(img.URL))
	}
	return urls
}
