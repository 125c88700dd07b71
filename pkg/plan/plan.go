package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the plan file looked up inside a project directory.
const FileName = "plan.yaml"

// Load reads a plan from a YAML file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return Parse(data)
}

// Parse decodes plan YAML. Unknown keys are rejected.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}
	return &p, nil
}

// LoadProject loads a plan from a project directory.
// It looks for plan.yaml in the given directory.
func LoadProject(projectDir string) (*Plan, error) {
	return Load(filepath.Join(projectDir, FileName))
}

// LoadPath accepts either a plan file or a project directory.
func LoadPath(path string) (*Plan, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	if info.IsDir() {
		return LoadProject(path)
	}
	return Load(path)
}
