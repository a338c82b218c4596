package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/musictags/tagchart/internal/models"
)

// Paths holds the locations of the three tab-separated dataset files.
type Paths struct {
	Artists       string
	Tags          string
	TaggedArtists string
}

// Load reads the three dataset files into an immutable Catalog. Any missing
// or malformed file is returned as an error; callers treat that as fatal
// since the process cannot serve requests without data.
//
// Association rows referencing unknown artist or tag ids are kept and
// counted (the source data does not guarantee referential integrity); the
// dangling-reference counts are logged as a warning so operators can spot
// bad exports. A dangling tag id surfaces later as a per-request error.
func Load(logger *zap.Logger, paths Paths) (*Catalog, error) {
	artists, err := loadArtists(paths.Artists)
	if err != nil {
		return nil, fmt.Errorf("loading artists from %s: %w", paths.Artists, err)
	}

	tags, err := loadTags(paths.Tags)
	if err != nil {
		return nil, fmt.Errorf("loading tags from %s: %w", paths.Tags, err)
	}

	associations, err := loadAssociations(paths.TaggedArtists)
	if err != nil {
		return nil, fmt.Errorf("loading tagged artists from %s: %w", paths.TaggedArtists, err)
	}

	cat := New(artists, tags, associations)

	if danglingArtists, danglingTags := cat.DanglingRefs(); danglingArtists > 0 || danglingTags > 0 {
		logger.Warn("dataset_has_dangling_references",
			zap.Int("associations_unknown_artist", danglingArtists),
			zap.Int("associations_unknown_tag", danglingTags),
		)
	}

	logger.Info("datasets_loaded",
		zap.Int("artists", cat.NumArtists()),
		zap.Int("tags", cat.NumTags()),
		zap.Int("associations", cat.NumAssociations()),
	)

	return cat, nil
}

func loadArtists(path string) ([]models.Artist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newTSVReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idCol, err := columnIndex(header, "id")
	if err != nil {
		return nil, err
	}
	nameCol, err := columnIndex(header, "name")
	if err != nil {
		return nil, err
	}

	var artists []models.Artist
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		id, err := strconv.Atoi(record[idCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: artist id %q: %w", line, record[idCol], err)
		}
		artists = append(artists, models.Artist{ID: id, Name: record[nameCol]})
	}
	return artists, nil
}

func loadTags(path string) ([]models.Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// The tag table is latin-1 encoded (tag values include accented
	// characters that are not valid UTF-8).
	r := newTSVReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idCol, err := columnIndex(header, "tagID")
	if err != nil {
		return nil, err
	}
	valueCol, err := columnIndex(header, "tagValue")
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		id, err := strconv.Atoi(record[idCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: tag id %q: %w", line, record[idCol], err)
		}
		tags = append(tags, models.Tag{ID: id, Value: record[valueCol]})
	}
	return tags, nil
}

func loadAssociations(path string) ([]models.Association, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newTSVReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	artistCol, err := columnIndex(header, "artistID")
	if err != nil {
		return nil, err
	}
	tagCol, err := columnIndex(header, "tagID")
	if err != nil {
		return nil, err
	}

	var associations []models.Association
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		artistID, err := strconv.Atoi(record[artistCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: artist id %q: %w", line, record[artistCol], err)
		}
		tagID, err := strconv.Atoi(record[tagCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: tag id %q: %w", line, record[tagCol], err)
		}
		associations = append(associations, models.Association{ArtistID: artistID, TagID: tagID})
	}
	return associations, nil
}

func newTSVReader(src io.Reader) *csv.Reader {
	r := csv.NewReader(src)
	r.Comma = '\t'
	// Tag values and artist names may contain stray double quotes.
	r.LazyQuotes = true
	return r
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("missing column %q in header %v", name, header)
}
