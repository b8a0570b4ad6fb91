package loader

import (
	"fmt"
	"io"
	"os"
)

// ReadResults reads an output file of "<vertex_id> <value>" lines into a map of
// raw value tokens
func ReadResults(r io.Reader) (map[int64]string, error) {
	results := make(map[int64]string)
	err := scanFields(r, func(lineNo int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: %w: expected \"<id> <value>\"", lineNo, ErrMalformedLine)
		}
		id, err := parseID(lineNo, fields[0])
		if err != nil {
			return err
		}
		if _, exists := results[id]; exists {
			return fmt.Errorf("line %d: %w: vertex %d listed twice", lineNo, ErrMalformedLine, id)
		}
		results[id] = fields[1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ReadResultsFile reads an output file from disk
func ReadResultsFile(path string) (map[int64]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return ReadResults(file)
}
