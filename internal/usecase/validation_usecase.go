package usecase

import (
	"context"
	"fmt"
)

// Problem is one violation found in an exported dataset
type Problem struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	switch {
	case p.File != "" && p.Line > 0:
		return fmt.Sprintf("%s:%d: %s", p.File, p.Line, p.Message)
	case p.File != "":
		return fmt.Sprintf("%s: %s", p.File, p.Message)
	default:
		return p.Message
	}
}

// DatasetReport is the outcome of validating one dataset directory
type DatasetReport struct {
	Dir      string         `json:"dir"`
	Rows     map[string]int `json:"rows"`
	Problems []Problem      `json:"problems"`
	// Omitted counts problems dropped once the report was full
	Omitted int `json:"omitted,omitempty"`
}

// Valid reports whether no problem was found.
func (r *DatasetReport) Valid() bool {
	return len(r.Problems) == 0 && r.Omitted == 0
}

// ValidationReport covers every dataset found under a root directory
type ValidationReport struct {
	Root     string           `json:"root"`
	Datasets []*DatasetReport `json:"datasets"`
}

// ProblemCount returns the number of problems across all datasets.
func (r *ValidationReport) ProblemCount() int {
	total := 0
	for _, ds := range r.Datasets {
		total += len(ds.Problems) + ds.Omitted
	}

	return total
}

// ValidationUsecase defines the interface for checking exported datasets
type ValidationUsecase interface {
	// Validate checks every dataset with a manifest under root. It returns the
	// report together with ErrDatasetInvalid when any problem was found.
	Validate(ctx context.Context, root string) (*ValidationReport, error)
}
