package service

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/schema"
)

// SeedFile is the YAML layout accepted by ParseSeedFile:
//
//	projects:
//	  - clientName: Acme Corp
//	    projectNo: P-101
//	    media: Video
//	    status: In Progress
type SeedFile struct {
	Projects []SeedRecord `yaml:"projects"`
}

type SeedRecord struct {
	ClientName string `yaml:"clientName" json:"clientName"`
	ProjectNo  string `yaml:"projectNo" json:"projectNo"`
	Media      string `yaml:"media" json:"media"`
	Status     string `yaml:"status" json:"status,omitempty"`
}

// ParseSeedFile reads seed projects from a YAML file. Records are checked
// with the same rules as API input.
func ParseSeedFile(path string) ([]domain.NewProject, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f SeedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	out := make([]domain.NewProject, 0, len(f.Projects))
	for i, rec := range f.Projects {
		body, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		res := schema.ParseInsert(body)
		if !res.OK() {
			return nil, fmt.Errorf("seed record %d: %w", i, res.Err)
		}
		out = append(out, res.Value)
	}
	return out, nil
}
