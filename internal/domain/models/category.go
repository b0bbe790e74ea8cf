package models

// CategoryAll is the synthetic category whose count tracks the total
// document count across all categories. It is also the reserved filter
// value meaning "no category filter".
const CategoryAll = "all"

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
