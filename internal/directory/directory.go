// Package directory holds the technician catalog. The catalog is seeded at
// startup and immutable for the process lifetime; matching preserves
// declaration order so results stay deterministic.
package directory

import "github.com/applicare/backend/internal/models"

type Directory struct {
	techs []models.Technician
}

func New(techs []models.Technician) *Directory {
	return &Directory{techs: techs}
}

func (d *Directory) All() []models.Technician {
	return d.techs
}

func (d *Directory) Get(id string) (models.Technician, bool) {
	for _, t := range d.techs {
		if t.ID == id {
			return t, true
		}
	}
	return models.Technician{}, false
}

// Match filters by supported appliance, serviceable region and, when
// non-empty, required skill. First-declared, first-returned; no ranking.
func (d *Directory) Match(appliance, requiredSkill, region string) []models.Technician {
	var out []models.Technician
	for _, t := range d.techs {
		if !contains(t.Appliances, appliance) {
			continue
		}
		if !contains(t.Regions, region) {
			continue
		}
		if requiredSkill != "" && !contains(t.Skills, requiredSkill) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
