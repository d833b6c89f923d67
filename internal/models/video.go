package models

// Video is a playable or embeddable clip attached to a Content record
type Video struct {
	ID        string `json:"id"`
	Key       string `json:"key,omitempty"`
	Name      string `json:"name"`
	Type      string `json:"type"` // Trailer, Teaser, Clip, ...
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

// YouTubeEmbedURL returns the embeddable player URL for a YouTube video key.
func YouTubeEmbedURL(key string) string {
	return "https://www.youtube.com/embed/" + key
}

// YouTubeThumbnailURL returns the high quality thumbnail URL for a YouTube video key.
func YouTubeThumbnailURL(key string) string {
	return "https://img.youtube.com/vi/" + key + "/hqdefault.jpg"
}
