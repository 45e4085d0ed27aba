package planner

import (
	"strings"
	"time"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/models"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Plausible measurement ranges. Values outside are discarded as entry
// errors, not rejected; the calculators fall back to the missing-data policy.
const (
	minHeightCM = 50
	maxHeightCM = 250
	minWeightKG = 20
	maxWeightKG = 300
)

// Profile is a sanitized, read-only view of a client record. Optional fields
// stay nil when absent or implausible; nothing is defaulted here.
type Profile struct {
	ClientID      uint
	Gender        string
	BirthDate     *time.Time
	HeightCM      *float64
	WeightKG      *float64
	TargetKG      *float64
	ActivityLevel string
	Conditions    []string
	Restrictions  []string
}

// Normalize produces a best-effort Profile from a raw client record. It
// never fails: out-of-range measurements are dropped, an unrecognized
// activity level becomes moderate, and malformed tags are simply ignored.
func Normalize(c models.Client) Profile {
	p := Profile{
		ClientID:      c.ID,
		Gender:        strings.ToLower(strings.TrimSpace(c.Gender)),
		BirthDate:     c.BirthDate,
		HeightCM:      inRange(c.HeightCM, minHeightCM, maxHeightCM),
		WeightKG:      inRange(c.WeightKG, minWeightKG, maxWeightKG),
		TargetKG:      inRange(c.TargetWeightKG, minWeightKG, maxWeightKG),
		ActivityLevel: strings.ToLower(strings.TrimSpace(c.ActivityLevel)),
		Conditions:    splitTags(c.Conditions),
		Restrictions:  splitTags(c.Restrictions),
	}
	if _, ok := activityFactors[p.ActivityLevel]; !ok {
		p.ActivityLevel = ActivityModerate
	}
	return p
}

func inRange(v *float64, min, max float64) *float64 {
	if v == nil || *v < min || *v > max {
		return nil
	}
	value := *v
	return &value
}

// splitTags turns a comma-separated tag column into a clean slice.
func splitTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
