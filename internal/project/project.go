// Package project holds the caller-side snapshot of a construction project:
// its label and the line items entered so far.
package project

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/carbon-cli/internal/emission"
	"github.com/sells-group/carbon-cli/internal/model"
	"github.com/sells-group/carbon-cli/internal/tabular"
)

// Project is a labelled set of entries. The engine itself is stateless; a
// Project is what a caller keeps between edits.
type Project struct {
	ID      uuid.UUID
	Label   string
	Entries model.Entries
}

// New creates an empty project with a fresh ID.
func New(label string) *Project {
	return &Project{ID: uuid.New(), Label: strings.TrimSpace(label)}
}

// Append adds one line item.
func (p *Project) Append(item model.LineItem) error {
	if err := p.Entries.Append(item); err != nil {
		return eris.Wrap(err, "project: append")
	}
	return nil
}

// Remove deletes the i-th entry of category c.
func (p *Project) Remove(c model.Category, i int) error {
	if err := p.Entries.Remove(c, i); err != nil {
		return eris.Wrap(err, "project: remove")
	}
	return nil
}

// Replace swaps the whole entry set for a copy of entries.
func (p *Project) Replace(entries model.Entries) {
	p.Entries = entries.Clone()
}

// Report recomputes the project's totals and details from scratch.
func (p *Project) Report(calc *emission.Calculator) model.Report {
	return calc.Aggregate(p.Entries)
}

// Import replaces the project's entries with those decoded from a report
// table. On failure the project is left untouched.
func (p *Project) Import(im *tabular.Importer, data []byte, f tabular.Format, opts tabular.XLSXOptions) error {
	entries, err := im.Import(data, f, opts)
	if err != nil {
		return eris.Wrap(err, "project: import")
	}
	p.Entries = entries

	zap.L().Info("project: imported entries",
		zap.String("project", p.ID.String()),
		zap.String("format", string(f)),
		zap.Int("entries", entries.Len()),
	)
	return nil
}

// Filename is the default export filename for this project.
func (p *Project) Filename(f tabular.Format) string {
	return tabular.Filename(p.Label, f)
}

// document is the YAML form of a project file.
type document struct {
	ID      string        `yaml:"id"`
	Label   string        `yaml:"label"`
	Entries model.Entries `yaml:"entries"`
}

// Load reads a project file. A file without an id is assigned a new one.
func Load(path string) (*Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "project: read %s", path)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, eris.Wrap(err, "project: parse")
	}

	p := &Project{Label: doc.Label, Entries: doc.Entries}
	if doc.ID == "" {
		p.ID = uuid.New()
	} else if p.ID, err = uuid.Parse(doc.ID); err != nil {
		return nil, eris.Wrapf(err, "project: invalid id %q", doc.ID)
	}
	return p, nil
}

// Save writes the project file to path.
func (p *Project) Save(path string) error {
	raw, err := yaml.Marshal(document{ID: p.ID.String(), Label: p.Label, Entries: p.Entries})
	if err != nil {
		return eris.Wrap(err, "project: encode")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return eris.Wrapf(err, "project: write %s", path)
	}
	return nil
}
