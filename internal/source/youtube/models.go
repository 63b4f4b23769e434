package youtube

// Video is a video object of the Invidious-compatible API.
type Video struct {
	VideoID         string      `json:"videoId"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Published       int64       `json:"published"` // unix seconds, derived from relative text for listings
	PublishedText   string      `json:"publishedText"`
	LengthSeconds   int         `json:"lengthSeconds"`
	ViewCount       int64       `json:"viewCount"`
	LikeCount       int64       `json:"likeCount"`
	DislikeCount    int64       `json:"dislikeCount"`
	Author          string      `json:"author"`
	AuthorID        string      `json:"authorId"`
	VideoThumbnails []Thumbnail `json:"videoThumbnails"`
}

type Thumbnail struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// ChannelVideosResponse is one page of a channel's uploads.
type ChannelVideosResponse struct {
	Videos       []Video `json:"videos"`
	Continuation string  `json:"continuation"`
}
