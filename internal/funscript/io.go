package funscript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tidwall/pretty"
)

// StdStream is the path that selects stdin for reading and stdout for writing.
const StdStream = "-"

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Decode parses a funscript document from r and validates it.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse funscript: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode serializes a script. Pretty output keeps short arrays such as single
// actions on one line.
func Encode(s *Script, prettyPrint bool) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode funscript: %w", err)
	}
	if prettyPrint {
		data = pretty.PrettyOptions(data, prettyOptions)
		data = bytes.TrimRight(data, "\n")
	}
	return data, nil
}

// Load reads and decodes the script at path.
func Load(path string) (*Script, error) {
	if path == StdStream {
		return Decode(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save encodes s and writes it to path. Files are replaced atomically so a
// failed write never leaves a truncated script behind.
func Save(path string, s *Script, prettyPrint bool) error {
	data, err := Encode(s, prettyPrint)
	if err != nil {
		return err
	}

	if path == StdStream {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace output: %w", err)
	}
	return nil
}
