package entity

// Topic is a named category that articles belong to.
// Topics are seeded once and immutable afterwards.
type Topic struct {
	Slug        string
	Description string
}
