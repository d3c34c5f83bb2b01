package search

// ItemRef is a lightweight reference to a note or article; full content
// bodies are never leaked to the client.
type ItemRef struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Href  string   `json:"href"`
}

type ProjectRef struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

type AboutRef struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// Result groups matches by source. Order within each group preserves the
// source collection order (date descending).
type Result struct {
	Notes    []ItemRef    `json:"notes"`
	Articles []ItemRef    `json:"articles"`
	Tags     []string     `json:"tags"`
	About    *AboutRef    `json:"about"`
	Projects []ProjectRef `json:"projects"`
}

// EmptyResult returns a Result whose groups serialize as empty arrays.
func EmptyResult() Result {
	return Result{
		Notes:    []ItemRef{},
		Articles: []ItemRef{},
		Tags:     []string{},
		Projects: []ProjectRef{},
	}
}
