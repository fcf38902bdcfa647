package dataset

import (
	"fmt"
	"os"

	"github.com/sbinet/npyio"
)

// ReadSemanticGT reads one per-face ground-truth array from a NumPy
// .npy file. The upstream arrays are stored as int64 ("<i8"), one
// class index per face.
func ReadSemanticGT(filename string) ([]int64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var gt []int64
	if err = npyio.Read(f, &gt); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return gt, nil
}

// WriteSemanticGT writes a per-face ground-truth array as a NumPy
// .npy file.
func WriteSemanticGT(filename string, gt []int64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = npyio.Write(f, gt); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	return f.Close()
}
