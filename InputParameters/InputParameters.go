package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file, describing where the
// dataset artifacts live and how the pipeline runs.
type DatasetParameters struct {
	Title          string `yaml:"Title"`
	RepoID         string `yaml:"RepoID"`
	ColoredRepoID  string `yaml:"ColoredRepoID"`
	MeshArchive    string `yaml:"MeshArchive"`
	GTArchive      string `yaml:"GTArchive"`
	ColoredArchive string `yaml:"ColoredArchive"`
	LabelFile      string `yaml:"LabelFile"`
	MeshDir        string `yaml:"MeshDir"`
	GTDir          string `yaml:"GTDir"`
	ColoredDir     string `yaml:"ColoredDir"`
	Workers        int    `yaml:"Workers"` // 0 means one per CPU
}

// NewDatasetParameters returns parameters matching the upstream
// PartObjaverse-Tiny layout.
func NewDatasetParameters() *DatasetParameters {
	return &DatasetParameters{
		Title:          "PartObjaverse-Tiny",
		RepoID:         "yhyang-myron/PartObjaverse-Tiny",
		ColoredRepoID:  "AvaLovelace/PartObjaverse-Tiny-visualizations",
		MeshArchive:    "PartObjaverse-Tiny_mesh.zip",
		GTArchive:      "PartObjaverse-Tiny_semantic_gt.zip",
		ColoredArchive: "PartObjaverse-Tiny_mesh_colored.zip",
		LabelFile:      "PartObjaverse-Tiny_semantic.json",
		MeshDir:        "PartObjaverse-Tiny_mesh",
		GTDir:          "PartObjaverse-Tiny_semantic_gt",
		ColoredDir:     "PartObjaverse-Tiny_mesh_colored",
	}
}

// Parse overlays values from a YAML document onto ip.
func (ip *DatasetParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *DatasetParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t= RepoID\n", ip.RepoID)
	fmt.Printf("[%s]\t= ColoredRepoID\n", ip.ColoredRepoID)
	fmt.Printf("[%s]\t= LabelFile\n", ip.LabelFile)
	fmt.Printf("[%s]\t= MeshDir\n", ip.MeshDir)
	fmt.Printf("[%s]\t= GTDir\n", ip.GTDir)
	fmt.Printf("[%s]\t= ColoredDir\n", ip.ColoredDir)
	fmt.Printf("[%d]\t\t\t\t= Workers\n", ip.Workers)
}
