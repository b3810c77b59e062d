package types

// Note is the canonical record produced by the API adapter. Backends disagree
// on field naming; normalization guarantees ID, Title, and Content are set
// (possibly empty) before a record enters application state. Extra carries any
// backend fields the client does not model, passed through unmodified.
type Note struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Extra   map[string]any `json:"-"`
}
