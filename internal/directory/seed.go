package directory

import (
	"time"

	"github.com/applicare/backend/internal/models"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func slot(year int, month time.Month, day, startHour, startMin, endHour, endMin int) models.TimeSlot {
	return models.TimeSlot{
		Start: time.Date(year, month, day, startHour, startMin, 0, 0, ist),
		End:   time.Date(year, month, day, endHour, endMin, 0, 0, ist),
	}
}

// Seed returns the technician catalog: six technicians across three service
// regions with fixed IST availability windows.
func Seed() []models.Technician {
	return []models.Technician{
		{
			ID:         "tech_01",
			Name:       "Asha K",
			Skills:     []string{"wm_vibration", "ac_leak"},
			Appliances: []string{"WashingMachine", "AC"},
			Regions:    []string{"Bengaluru Urban", "Central"},
			Availability: []models.TimeSlot{
				slot(2025, time.September, 20, 10, 0, 12, 0),
				slot(2025, time.September, 20, 15, 0, 16, 0),
			},
		},
		{
			ID:         "tech_02",
			Name:       "Ravi S",
			Skills:     []string{"fridge_cooling", "tv_display"},
			Appliances: []string{"Refrigerator", "TV"},
			Regions:    []string{"Mumbai Suburban", "Central"},
			Availability: []models.TimeSlot{
				slot(2025, time.September, 21, 9, 0, 11, 0),
				slot(2025, time.September, 21, 14, 0, 16, 0),
			},
		},
		{
			ID:         "tech_03",
			Name:       "Priya M",
			Skills:     []string{"ac_airflow", "waterpurifier_filter"},
			Appliances: []string{"AC", "WaterPurifier"},
			Regions:    []string{"Bengaluru Urban", "West"},
			Availability: []models.TimeSlot{
				slot(2025, time.September, 22, 10, 30, 12, 30),
				slot(2025, time.September, 22, 15, 30, 17, 0),
			},
		},
		{
			ID:         "tech_04",
			Name:       "Anil P",
			Skills:     []string{"wm_drum", "ac_cooling"},
			Appliances: []string{"WashingMachine", "AC"},
			Regions:    []string{"West", "Mumbai Suburban"},
			Availability: []models.TimeSlot{
				slot(2025, time.September, 23, 9, 0, 11, 0),
				slot(2025, time.September, 23, 13, 0, 15, 0),
			},
		},
		{
			ID:         "tech_05",
			Name:       "Neha R",
			Skills:     []string{"fridge_temp", "tv_sound"},
			Appliances: []string{"Refrigerator", "TV"},
			Regions:    []string{"Central", "Bengaluru Urban"},
			Availability: []models.TimeSlot{
				slot(2025, time.September, 24, 10, 0, 12, 0),
				slot(2025, time.September, 24, 15, 0, 16, 30),
			},
		},
		{
			ID:         "tech_06",
			Name:       "Kiran V",
			Skills:     []string{"waterpurifier_flow", "ac_noise", "wm_motor"},
			Appliances: []string{"WaterPurifier", "AC", "WashingMachine"},
			Regions:    []string{"West", "Mumbai Suburban"},
			Availability: []models.TimeSlot{
				slot(2025, time.September, 25, 9, 30, 11, 30),
				slot(2025, time.September, 25, 14, 30, 16, 30),
			},
		},
	}
}
