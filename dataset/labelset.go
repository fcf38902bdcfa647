// Package dataset manages the local copy of the part-segmentation
// dataset: the semantic label set, the mesh and ground-truth archives,
// and the cache-first download of each artifact.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Sample is one mesh identifier with its ordered part labels. The
// position of a label in PartLabels is its semantic class index.
type Sample struct {
	UID        string
	PartLabels []string
}

// Category is one dataset category with its samples in source order.
type Category struct {
	Name    string
	Samples []Sample
}

// LabelSet maps categories to mesh identifiers to ordered part-label
// lists. Category and sample order follow the source JSON, which is
// what makes the flattened identifier list deterministic.
type LabelSet struct {
	Categories []Category

	labelsByUID map[string][]string
}

// DecodeLabelSet decodes the semantic JSON artifact. A plain
// map[string]... decode would lose the source key order, so this walks
// the token stream instead.
func DecodeLabelSet(r io.Reader) (*LabelSet, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("label set: %w", err)
	}
	ls := &LabelSet{labelsByUID: make(map[string][]string)}
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("label set: category name: %w", err)
		}
		cat := Category{Name: name}
		if err = expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("label set: category %q: %w", name, err)
		}
		for dec.More() {
			uid, err := stringToken(dec)
			if err != nil {
				return nil, fmt.Errorf("label set: category %q: uid: %w", name, err)
			}
			var labels []string
			if err = dec.Decode(&labels); err != nil {
				return nil, fmt.Errorf("label set: sample %q: %w", uid, err)
			}
			if _, dup := ls.labelsByUID[uid]; dup {
				return nil, fmt.Errorf("label set: duplicate uid %q", uid)
			}
			cat.Samples = append(cat.Samples, Sample{UID: uid, PartLabels: labels})
			ls.labelsByUID[uid] = labels
		}
		if err = expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("label set: category %q: %w", name, err)
		}
		ls.Categories = append(ls.Categories, cat)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("label set: %w", err)
	}
	return ls, nil
}

// ReadLabelSet decodes the label set from a file.
func ReadLabelSet(filename string) (*LabelSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeLabelSet(f)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("want %q, have %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("want string key, have %v", tok)
	}
	return s, nil
}

// FlatUIDs returns every mesh identifier, in category order then
// sample order within each category.
func (ls *LabelSet) FlatUIDs() []string {
	var uids []string
	for _, cat := range ls.Categories {
		for _, s := range cat.Samples {
			uids = append(uids, s.UID)
		}
	}
	return uids
}

// NumSamples returns the total sample count across categories.
func (ls *LabelSet) NumSamples() (n int) {
	for _, cat := range ls.Categories {
		n += len(cat.Samples)
	}
	return
}

// CategoryNames returns the category names in source order.
func (ls *LabelSet) CategoryNames() []string {
	names := make([]string, len(ls.Categories))
	for i, cat := range ls.Categories {
		names[i] = cat.Name
	}
	return names
}

// Category returns the named category.
func (ls *LabelSet) Category(name string) (*Category, bool) {
	for i := range ls.Categories {
		if ls.Categories[i].Name == name {
			return &ls.Categories[i], true
		}
	}
	return nil, false
}

// Labels returns the ordered part labels for one mesh identifier.
func (ls *LabelSet) Labels(uid string) ([]string, bool) {
	labels, ok := ls.labelsByUID[uid]
	return labels, ok
}

// PageSize is the number of samples shown per page when browsing a
// category.
const PageSize = 4

// NumPages returns the page count for a category at PageSize samples
// per page.
func (c *Category) NumPages() int {
	return (len(c.Samples) + PageSize - 1) / PageSize
}

// Page returns the samples on page p (0-based). Out-of-range pages
// return an empty slice.
func (c *Category) Page(p int) []Sample {
	start := p * PageSize
	if p < 0 || start >= len(c.Samples) {
		return nil
	}
	end := start + PageSize
	if end > len(c.Samples) {
		end = len(c.Samples)
	}
	return c.Samples[start:end]
}
