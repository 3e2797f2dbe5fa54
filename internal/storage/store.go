// Package storage persists built-model summaries under a data directory,
// one subdirectory per build: metadata.json plus an equations.csv table.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arjun-sk/cellsym/internal/battery"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// BuildMetadata is the queryable record of one composed model.
type BuildMetadata struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Timestamp        time.Time `json:"timestamp"`
	Particle         string    `json:"particle"`
	SurfaceForm      string    `json:"surface_form"`
	Dimensionality   int       `json:"dimensionality"`
	Convection       string    `json:"convection"`
	Thermal          string    `json:"thermal"`
	CurrentCollector string    `json:"current_collector"`
	Porosity         string    `json:"porosity"`
	Variables        int       `json:"variables"`
	Equations        int       `json:"equations"`
}

// Save writes the model's metadata and equation table, returning the
// build ID.
func (s *Store) Save(m *battery.Model) (string, error) {
	buildID := fmt.Sprintf("build_%d", time.Now().Unix())
	buildDir := filepath.Join(s.baseDir, buildID)

	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return "", err
	}

	opts := m.Options()
	meta := BuildMetadata{
		ID:               buildID,
		Name:             m.Name(),
		Timestamp:        time.Now(),
		Particle:         string(opts.Particle),
		SurfaceForm:      string(opts.SurfaceForm),
		Dimensionality:   opts.Dimensionality,
		Convection:       string(opts.Convection),
		Thermal:          string(opts.Thermal),
		CurrentCollector: string(opts.CurrentCollector),
		Porosity:         string(opts.Porosity),
		Variables:        len(m.VariableNames()),
		Equations:        len(m.EquationNames()),
	}

	metaPath := filepath.Join(buildDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(buildDir, "equations.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"variable", "kind", "role", "has_ic", "has_bc", "expression"}); err != nil {
		return "", err
	}
	for _, name := range m.EquationNames() {
		eq, _ := m.Equation(name)
		_, hasIC := m.InitialCondition(name)
		_, hasBC := m.BoundaryConditions(name)
		row := []string{
			name,
			eq.Kind.String(),
			eq.Role,
			fmt.Sprintf("%t", hasIC),
			fmt.Sprintf("%t", hasBC),
			eq.Expr.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return buildID, nil
}

func (s *Store) List() ([]BuildMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BuildMetadata{}, nil
		}
		return nil, err
	}

	builds := make([]BuildMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta BuildMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		builds = append(builds, meta)
	}

	return builds, nil
}

func (s *Store) Load(buildID string) (*BuildMetadata, error) {
	metaPath := filepath.Join(s.baseDir, buildID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta BuildMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}
