package runtime

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// FileReader loads module source text by real path
type FileReader interface {
	ReadUTF8(path string) (string, error)
}

// OSFileReader reads sources from the local filesystem
type OSFileReader struct{}

// ReadUTF8 reads the file and rejects content that is not valid UTF-8
func (OSFileReader) ReadUTF8(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid utf-8", path)
	}
	return string(data), nil
}
