package dataset

import (
	"github.com/musictags/tagchart/internal/models"
)

// Catalog holds the three loaded datasets as read-only lookup structures.
// It is built once at process start and never mutated afterwards, so it is
// safe to share across concurrent request handlers without locking.
type Catalog struct {
	artistIDByName map[string]int
	tagValueByID   map[int]string
	associations   []models.Association

	// tagsByArtist indexes association tag ids by artist id, preserving
	// dataset order so frequency ties resolve by first-encountered tag.
	tagsByArtist map[int][]int

	artistNames []string

	danglingArtistRefs int
	danglingTagRefs    int
}

// New builds a Catalog from parsed dataset rows. Association rows that
// reference unknown artist or tag ids are kept and counted; the dangling
// reference totals are exposed via DanglingRefs for reporting.
func New(artists []models.Artist, tags []models.Tag, associations []models.Association) *Catalog {
	cat := &Catalog{
		artistIDByName: make(map[string]int, len(artists)),
		tagValueByID:   make(map[int]string, len(tags)),
		associations:   associations,
		tagsByArtist:   make(map[int][]int),
		artistNames:    make([]string, 0, len(artists)),
	}

	knownArtistIDs := make(map[int]struct{}, len(artists))
	for _, a := range artists {
		if _, dup := cat.artistIDByName[a.Name]; !dup {
			cat.artistNames = append(cat.artistNames, a.Name)
		}
		// Last row wins for duplicate names, matching a plain name-keyed
		// dictionary build over the rows.
		cat.artistIDByName[a.Name] = a.ID
		knownArtistIDs[a.ID] = struct{}{}
	}

	for _, t := range tags {
		cat.tagValueByID[t.ID] = t.Value
	}

	for _, assoc := range associations {
		cat.tagsByArtist[assoc.ArtistID] = append(cat.tagsByArtist[assoc.ArtistID], assoc.TagID)
		if _, ok := knownArtistIDs[assoc.ArtistID]; !ok {
			cat.danglingArtistRefs++
		}
		if _, ok := cat.tagValueByID[assoc.TagID]; !ok {
			cat.danglingTagRefs++
		}
	}

	return cat
}

// ArtistID returns the id for an artist name and whether the name is known.
func (c *Catalog) ArtistID(name string) (int, bool) {
	id, ok := c.artistIDByName[name]
	return id, ok
}

// HasArtist reports whether the artist name exists in the dataset.
func (c *Catalog) HasArtist(name string) bool {
	_, ok := c.artistIDByName[name]
	return ok
}

// TagValue returns the value for a tag id and whether the id is known.
func (c *Catalog) TagValue(id int) (string, bool) {
	v, ok := c.tagValueByID[id]
	return v, ok
}

// ArtistTagIDs returns the tag ids applied to an artist, one entry per
// application, in dataset order. The returned slice must not be modified.
func (c *Catalog) ArtistTagIDs(artistID int) []int {
	return c.tagsByArtist[artistID]
}

// ArtistNames returns all known artist names in dataset row order.
// The returned slice must not be modified.
func (c *Catalog) ArtistNames() []string {
	return c.artistNames
}

// NumArtists returns the number of loaded artists.
func (c *Catalog) NumArtists() int { return len(c.artistIDByName) }

// NumTags returns the number of loaded tags.
func (c *Catalog) NumTags() int { return len(c.tagValueByID) }

// NumAssociations returns the number of loaded artist-tag associations.
func (c *Catalog) NumAssociations() int { return len(c.associations) }

// Associations returns all artist-tag associations in dataset order.
// The returned slice must not be modified.
func (c *Catalog) Associations() []models.Association {
	return c.associations
}

// DanglingRefs returns how many associations reference an unknown artist
// id and how many reference an unknown tag id.
func (c *Catalog) DanglingRefs() (unknownArtists, unknownTags int) {
	return c.danglingArtistRefs, c.danglingTagRefs
}
