package apiclient

import "strings"

// PlaceholderImage is shown for events without a usable poster
const PlaceholderImage = "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?auto=compress&cs=tinysrgb&w=1200"

// ImageResolver turns image paths returned by the API into absolute URLs
type ImageResolver struct {
	baseURL string
}

// NewImageResolver creates a resolver for paths relative to baseURL
func NewImageResolver(baseURL string) *ImageResolver {
	return &ImageResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL resolves path. Inline data URIs are replaced by the placeholder since
// the pages never embed them.
func (r *ImageResolver) URL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || strings.HasPrefix(path, "data:image") {
		return PlaceholderImage
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	path = strings.ReplaceAll(path, "/uploads/uploads/", "/uploads/")
	return r.baseURL + "/" + strings.TrimLeft(path, "/")
}
