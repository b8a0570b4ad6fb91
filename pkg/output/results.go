package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ritzau/graphalytics-go/pkg/algorithms"
)

// WriteResults writes one "<vertex_id> <value>" line per vertex in ascending id order
func WriteResults(w io.Writer, out algorithms.Output) error {
	bw := bufio.NewWriter(w)
	for _, id := range out.IDs() {
		if _, err := fmt.Fprintf(bw, "%d %s\n", id, out.Text(id)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteResultsFile writes the results to path, creating parent directories
func WriteResultsFile(path string, out algorithms.Output) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	return WriteResults(file, out)
}
