package planner

import (
	"reflect"
	"testing"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/models"
)

func TestNormalizeDiscardsImplausibleMeasurements(t *testing.T) {
	tests := []struct {
		name       string
		client     models.Client
		wantHeight *float64
		wantWeight *float64
	}{
		{
			name:       "plausible values kept",
			client:     models.Client{HeightCM: fp(170), WeightKG: fp(70)},
			wantHeight: fp(170),
			wantWeight: fp(70),
		},
		{
			name:       "height too low discarded",
			client:     models.Client{HeightCM: fp(42), WeightKG: fp(70)},
			wantHeight: nil,
			wantWeight: fp(70),
		},
		{
			name:       "height too high discarded",
			client:     models.Client{HeightCM: fp(260), WeightKG: fp(70)},
			wantHeight: nil,
			wantWeight: fp(70),
		},
		{
			name:       "weight out of range discarded",
			client:     models.Client{HeightCM: fp(170), WeightKG: fp(315)},
			wantHeight: fp(170),
			wantWeight: nil,
		},
		{
			name:       "absent stays absent",
			client:     models.Client{},
			wantHeight: nil,
			wantWeight: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.client)
			if !floatPtrEqual(p.HeightCM, tt.wantHeight) {
				t.Errorf("HeightCM = %v, want %v", deref(p.HeightCM), deref(tt.wantHeight))
			}
			if !floatPtrEqual(p.WeightKG, tt.wantWeight) {
				t.Errorf("WeightKG = %v, want %v", deref(p.WeightKG), deref(tt.wantWeight))
			}
		})
	}
}

func TestNormalizeActivityLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sedentary", ActivitySedentary},
		{"Very_Active", ActivityVeryActive},
		{" moderate ", ActivityModerate},
		{"couch potato", ActivityModerate},
		{"", ActivityModerate},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := Normalize(models.Client{ActivityLevel: tt.in})
			if p.ActivityLevel != tt.want {
				t.Errorf("ActivityLevel(%q) = %q, want %q", tt.in, p.ActivityLevel, tt.want)
			}
		})
	}
}

func TestNormalizeSplitsTags(t *testing.T) {
	p := Normalize(models.Client{
		Conditions:   "diabetes, hypertension ,, ",
		Restrictions: "vegan",
	})

	if want := []string{"diabetes", "hypertension"}; !reflect.DeepEqual(p.Conditions, want) {
		t.Errorf("Conditions = %v, want %v", p.Conditions, want)
	}
	if want := []string{"vegan"}; !reflect.DeepEqual(p.Restrictions, want) {
		t.Errorf("Restrictions = %v, want %v", p.Restrictions, want)
	}

	empty := Normalize(models.Client{})
	if empty.Conditions != nil || empty.Restrictions != nil {
		t.Errorf("empty tag columns should normalize to nil slices")
	}
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func deref(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
