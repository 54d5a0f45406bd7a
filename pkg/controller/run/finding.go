package run

// Finding represents a single rewritten (or would-be rewritten) line.
type Finding struct {
	File    string
	Line    int
	OldLine string
	NewLine string
}
