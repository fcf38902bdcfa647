package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Default dataset artifact names. These follow the upstream
// PartObjaverse-Tiny layout on the Hugging Face hub.
const (
	DefaultRepoID        = "yhyang-myron/PartObjaverse-Tiny"
	DefaultColoredRepoID = "AvaLovelace/PartObjaverse-Tiny-visualizations"

	MeshDirName    = "PartObjaverse-Tiny_mesh"
	GTDirName      = "PartObjaverse-Tiny_semantic_gt"
	ColoredDirName = "PartObjaverse-Tiny_mesh_colored"

	LabelFileName      = "PartObjaverse-Tiny_semantic.json"
	MeshArchiveName    = "PartObjaverse-Tiny_mesh.zip"
	GTArchiveName      = "PartObjaverse-Tiny_semantic_gt.zip"
	ColoredArchiveName = "PartObjaverse-Tiny_mesh_colored.zip"
)

// Store fetches dataset artifacts by repo id and file name, keeping
// downloaded archives in CacheDir and extracted content under the
// directories the rest of the pipeline reads from. Every fetch is
// cache-first: a target that already exists is never re-downloaded.
type Store struct {
	RepoID        string // hub dataset repo holding meshes, GT and labels
	ColoredRepoID string // hub dataset repo holding pre-colored meshes
	CacheDir      string // where downloaded archives land
	BaseURL       string // hub endpoint, overridable for tests

	LabelFile      string
	MeshArchive    string
	GTArchive      string
	ColoredArchive string
	MeshDir        string
	GTDir          string
	ColoredDir     string
}

// NewStore returns a Store with the upstream defaults, caching
// downloads under cacheDir.
func NewStore(cacheDir string) *Store {
	return &Store{
		RepoID:         DefaultRepoID,
		ColoredRepoID:  DefaultColoredRepoID,
		CacheDir:       cacheDir,
		BaseURL:        "https://huggingface.co",
		LabelFile:      LabelFileName,
		MeshArchive:    MeshArchiveName,
		GTArchive:      GTArchiveName,
		ColoredArchive: ColoredArchiveName,
		MeshDir:        MeshDirName,
		GTDir:          GTDirName,
		ColoredDir:     ColoredDirName,
	}
}

func (s *Store) artifactURL(repoID, filename string) string {
	return fmt.Sprintf("%s/datasets/%s/resolve/main/%s", s.BaseURL, repoID, filename)
}

// fetchArtifact downloads one artifact into the cache unless it is
// already there, returning the local path.
func (s *Store) fetchArtifact(repoID, filename string) (string, error) {
	local := filepath.Join(s.CacheDir, filename)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}
	if err := os.MkdirAll(s.CacheDir, 0755); err != nil {
		return "", fmt.Errorf("fetch %s: %w", filename, err)
	}
	url := s.artifactURL(repoID, filename)
	fmt.Printf("Downloading %s\n", url)
	if err := downloadFile(url, local); err != nil {
		return "", fmt.Errorf("fetch %s: %w", filename, err)
	}
	return local, nil
}

func downloadFile(url, dest string) error {
	client := &http.Client{Timeout: 30 * time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	// Download to a temp name so a partial file never looks cached
	tmp := dest + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}

// FetchLabelSet downloads (if necessary) and decodes the semantic
// label set artifact.
func (s *Store) FetchLabelSet() (*LabelSet, error) {
	local, err := s.fetchArtifact(s.RepoID, s.LabelFile)
	if err != nil {
		return nil, err
	}
	return ReadLabelSet(local)
}

// DownloadMeshes fetches and extracts the mesh archive under outDir,
// skipping everything when outDir/PartObjaverse-Tiny_mesh exists.
func (s *Store) DownloadMeshes(outDir string) error {
	return s.downloadArchive(s.RepoID, s.MeshArchive, outDir, s.MeshDir)
}

// DownloadSemanticGT fetches and extracts the ground-truth archive
// under outDir, skipping when the target directory exists.
func (s *Store) DownloadSemanticGT(outDir string) error {
	return s.downloadArchive(s.RepoID, s.GTArchive, outDir, s.GTDir)
}

// DownloadColoredMeshes fetches and extracts the pre-colored mesh
// archive under outDir, skipping when the target directory exists.
func (s *Store) DownloadColoredMeshes(outDir string) error {
	return s.downloadArchive(s.ColoredRepoID, s.ColoredArchive, outDir, s.ColoredDir)
}

func (s *Store) downloadArchive(repoID, archive, outDir, dirName string) error {
	target := filepath.Join(outDir, dirName)
	if _, err := os.Stat(target); err == nil {
		fmt.Printf("Directory %s already exists. Skipping download.\n", target)
		return nil
	}
	local, err := s.fetchArtifact(repoID, archive)
	if err != nil {
		return err
	}
	if err = Unzip(local, outDir); err != nil {
		return fmt.Errorf("extract %s: %w", archive, err)
	}
	return nil
}
