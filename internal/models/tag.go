package models

// Artist is a named entity with a unique integer id, the subject of tagging.
// Artist names are unique across the dataset.
type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Tag is a short descriptive label (e.g. a genre) with a unique integer id.
type Tag struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// Association links one artist to one tag. One row per application of the
// tag, so duplicates are meaningful and counted.
type Association struct {
	ArtistID int
	TagID    int
}

// RankedTag is a tag value together with the number of times it was applied
// to an artist. Derived per request, never persisted.
type RankedTag struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}
