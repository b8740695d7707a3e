// Package schedule computes candidate appointment slots from technician
// availability and customer preferences.
package schedule

import (
	"time"

	"github.com/applicare/backend/internal/models"
)

// DefaultTargetProposals is the per-technician proposal cap and the
// aggregate target the intake flow works toward.
const DefaultTargetProposals = 2

// Overlap intersects two half-open intervals. The pair overlaps iff the
// later start is strictly before the earlier end.
func Overlap(pref, avail models.TimeSlot) (models.TimeSlot, bool) {
	start := pref.Start
	if avail.Start.After(start) {
		start = avail.Start
	}
	end := pref.End
	if avail.End.Before(end) {
		end = avail.End
	}
	if start.Before(end) {
		return models.TimeSlot{Start: start, End: end}, true
	}
	return models.TimeSlot{}, false
}

// Propose walks preferred intervals in caller order against the
// technician's availability in declared order, collecting overlaps up to
// target. With no overlap at all it falls back to the technician's raw
// availability windows.
func Propose(tech models.Technician, preferred []models.TimeSlot, target int) []models.Proposal {
	if target <= 0 {
		target = DefaultTargetProposals
	}

	var out []models.Proposal
	for _, pref := range preferred {
		for _, avail := range tech.Availability {
			ov, ok := Overlap(pref, avail)
			if !ok {
				continue
			}
			out = append(out, models.Proposal{Start: ov.Start, End: ov.End, TechnicianID: tech.ID})
			if len(out) >= target {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, avail := range tech.Availability {
		out = append(out, models.Proposal{Start: avail.Start, End: avail.End, TechnicianID: tech.ID})
		if len(out) >= target {
			break
		}
	}
	return out
}

// ProposeAcross starts with the first technician's proposals and keeps
// appending from the rest while the aggregate stays below the default
// target, skipping exact duplicates. The cap applies per technician call,
// so one technician's pass may already exceed it.
func ProposeAcross(techs []models.Technician, preferred []models.TimeSlot) []models.Proposal {
	if len(techs) == 0 {
		return nil
	}
	out := Propose(techs[0], preferred, DefaultTargetProposals)
	for i := 1; len(out) < DefaultTargetProposals && i < len(techs); i++ {
		for _, p := range Propose(techs[i], preferred, DefaultTargetProposals) {
			if !containsProposal(out, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// ParseSlots converts caller-supplied slot strings, silently dropping
// entries whose timestamps do not parse.
func ParseSlots(inputs []models.SlotInput) []models.TimeSlot {
	var out []models.TimeSlot
	for _, in := range inputs {
		start, err := time.Parse(time.RFC3339, in.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, in.End)
		if err != nil {
			continue
		}
		out = append(out, models.TimeSlot{Start: start, End: end})
	}
	return out
}

func containsProposal(proposals []models.Proposal, p models.Proposal) bool {
	for _, existing := range proposals {
		if existing.TechnicianID == p.TechnicianID &&
			existing.Start.Equal(p.Start) && existing.End.Equal(p.End) {
			return true
		}
	}
	return false
}
