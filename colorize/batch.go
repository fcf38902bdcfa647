package colorize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/partviz/partviz/dataset"
	"github.com/partviz/partviz/mesh"
)

// ManifestName is the file the batch writes into the output directory
// when it finishes, marking the directory as a completed run.
const ManifestName = "manifest.json"

// Outcome is the result of coloring one mesh identifier.
type Outcome struct {
	UID string
	Err error
}

// Summary aggregates a batch run. A failed identifier never stops the
// other workers; it is reported here instead.
type Summary struct {
	Total    int
	Failed   int
	Skipped  bool // output directory already existed, nothing was done
	Outcomes []Outcome
}

// Manifest is the completion record written alongside the colored
// meshes.
type Manifest struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Total       int               `json:"total"`
	Failed      int               `json:"failed"`
	Failures    map[string]string `json:"failures,omitempty"`
}

// Batch colors every mesh in a label set, one output file per
// identifier. Workers run independently; each identifier's unit of
// work is load mesh, load ground truth, color, write, in that order.
type Batch struct {
	MeshDir  string
	GTDir    string
	OutDir   string
	Workers  int  // 0 means one per CPU
	Progress bool // draw a progress bar on stderr
}

// Run colors all identifiers in ls. When the output directory already
// exists the whole batch is skipped: nothing is loaded and nothing is
// written. Completion order across identifiers is unspecified.
func (b *Batch) Run(ls *dataset.LabelSet) (*Summary, error) {
	if _, err := os.Stat(b.OutDir); err == nil {
		if _, merr := os.Stat(filepath.Join(b.OutDir, ManifestName)); merr == nil {
			fmt.Printf("Output directory %s already exists. Skipping coloring.\n", b.OutDir)
		} else {
			fmt.Printf("Output directory %s exists but has no %s; it may be a partial run. "+
				"Delete the directory to recolor.\n", b.OutDir, ManifestName)
		}
		return &Summary{Skipped: true}, nil
	}

	uids := ls.FlatUIDs()
	if err := os.MkdirAll(b.OutDir, 0755); err != nil {
		return nil, err
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(uids) && len(uids) > 0 {
		workers = len(uids)
	}

	jobs := make(chan string)
	results := make(chan Outcome)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for uid := range jobs {
				results <- Outcome{UID: uid, Err: b.colorOne(uid)}
			}
		}()
	}
	go func() {
		for _, uid := range uids {
			jobs <- uid
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var bar *progressbar.ProgressBar
	if b.Progress {
		bar = progressbar.Default(int64(len(uids)), "Coloring meshes")
	}
	summary := &Summary{Total: len(uids)}
	for outcome := range results {
		if outcome.Err != nil {
			summary.Failed++
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if err := b.writeManifest(summary); err != nil {
		return summary, err
	}
	return summary, nil
}

// colorOne is one worker task; its steps are strictly sequential.
func (b *Batch) colorOne(uid string) error {
	m, err := mesh.ReadFile(filepath.Join(b.MeshDir, uid+".glb"))
	if err != nil {
		return err
	}
	gt, err := dataset.ReadSemanticGT(filepath.Join(b.GTDir, uid+".npy"))
	if err != nil {
		return err
	}
	colored, err := ColorFaces(m, gt)
	if err != nil {
		return err
	}
	return mesh.WriteFile(filepath.Join(b.OutDir, uid+".glb"), colored)
}

func (b *Batch) writeManifest(s *Summary) error {
	man := Manifest{
		GeneratedAt: time.Now().UTC(),
		Total:       s.Total,
		Failed:      s.Failed,
	}
	if s.Failed > 0 {
		man.Failures = make(map[string]string)
		for _, o := range s.Outcomes {
			if o.Err != nil {
				man.Failures[o.UID] = o.Err.Error()
			}
		}
	}
	data, err := json.MarshalIndent(&man, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(b.OutDir, ManifestName), data, 0644)
}

// Print writes the batch result in a human readable form.
func (s *Summary) Print() {
	if s.Skipped {
		return
	}
	fmt.Printf("Colored %d of %d meshes\n", s.Total-s.Failed, s.Total)
	for _, o := range s.Outcomes {
		if o.Err != nil {
			fmt.Printf("  %s: %s\n", o.UID, o.Err)
		}
	}
}

// Err returns a non-nil error when any identifier failed.
func (s *Summary) Err() error {
	if s.Failed > 0 {
		return fmt.Errorf("%d of %d meshes failed to color", s.Failed, s.Total)
	}
	return nil
}
