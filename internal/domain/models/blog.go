package models

// BlogPost is a post node returned by the blog publication API.
type BlogPost struct {
	ID         string          `json:"id"`
	CoverImage *BlogCoverImage `json:"coverImage"`
	Title      string          `json:"title"`
	Brief      string          `json:"brief"`
	URL        string          `json:"url"`
}

// BlogCoverImage holds the cover image of a post.
type BlogCoverImage struct {
	URL string `json:"url"`
}
