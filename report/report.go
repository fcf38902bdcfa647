// Package report renders static HTML pages that show each sample's
// original and colored mesh side by side with its part-label legend.
package report

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/partviz/partviz/dataset"
	"github.com/partviz/partviz/palette"
)

// Options locates the inputs and output of a report run. MeshPath and
// ColoredPath are URL paths to the mesh directories relative to the
// generated pages, so the report can sit next to the dataset copy.
type Options struct {
	Title       string
	OutDir      string
	MeshPath    string
	ColoredPath string
}

type legendEntry struct {
	Color string
	Label string
}

type sampleData struct {
	UID         string
	MeshFile    string
	ColoredFile string
	Legend      []legendEntry
}

type pageData struct {
	Title    string
	Category string
	Page     int // 1-based for display
	NumPages int
	Samples  []sampleData
	Prev     string
	Next     string
	Index    string
}

type indexCategory struct {
	Name    string
	Samples int
	Link    string
}

type indexData struct {
	Title      string
	NumSamples int
	Categories []indexCategory
}

// Generate writes index.html plus one page per category page (4
// samples each) under opts.OutDir.
func Generate(ls *dataset.LabelSet, opts Options) error {
	if opts.Title == "" {
		opts.Title = "PartObjaverse-Tiny"
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return err
	}

	idx := indexData{Title: opts.Title, NumSamples: ls.NumSamples()}
	for _, cat := range ls.Categories {
		idx.Categories = append(idx.Categories, indexCategory{
			Name:    cat.Name,
			Samples: len(cat.Samples),
			Link:    pageFileName(cat.Name, 0),
		})
	}
	if err := writePage(filepath.Join(opts.OutDir, "index.html"), indexTmpl, idx); err != nil {
		return err
	}

	for _, cat := range ls.Categories {
		for p := 0; p < cat.NumPages(); p++ {
			pd := pageData{
				Title:    opts.Title,
				Category: cat.Name,
				Page:     p + 1,
				NumPages: cat.NumPages(),
				Index:    "index.html",
			}
			if p > 0 {
				pd.Prev = pageFileName(cat.Name, p-1)
			}
			if p < cat.NumPages()-1 {
				pd.Next = pageFileName(cat.Name, p+1)
			}
			for _, s := range cat.Page(p) {
				sd := sampleData{
					UID:         s.UID,
					MeshFile:    path.Join(opts.MeshPath, s.UID+".glb"),
					ColoredFile: path.Join(opts.ColoredPath, s.UID+".glb"),
				}
				for i, label := range s.PartLabels {
					sd.Legend = append(sd.Legend, legendEntry{Color: palette.Hex(i), Label: label})
				}
				pd.Samples = append(pd.Samples, sd)
			}
			file := filepath.Join(opts.OutDir, pageFileName(cat.Name, p))
			if err := writePage(file, pageTmpl, pd); err != nil {
				return err
			}
		}
	}
	return nil
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// pageFileName returns the file name for one category page, with the
// category name reduced to filesystem-safe characters.
func pageFileName(category string, page int) string {
	slug := unsafeNameRe.ReplaceAllString(strings.ToLower(category), "-")
	return fmt.Sprintf("%s_%d.html", slug, page)
}

func writePage(filename string, tmpl *template.Template, data interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", filename, err)
	}
	return f.Close()
}
