package patient

import "testing"

func TestPatient_Profile(t *testing.T) {
	tests := []struct {
		name         string
		patient      Patient
		wantFrail    bool
		wantMonths   int
		wantPregnant bool
	}{
		{
			name:       "young adult",
			patient:    Patient{AgeYears: 30, Sex: "F"},
			wantFrail:  false,
			wantMonths: 360,
		},
		{
			name:       "explicit frail flag",
			patient:    Patient{AgeYears: 68, FrailElderly: true},
			wantFrail:  true,
			wantMonths: 816,
		},
		{
			name:       "age derives frailty",
			patient:    Patient{AgeYears: 75},
			wantFrail:  true,
			wantMonths: 900,
		},
		{
			name:       "just below cut-off",
			patient:    Patient{AgeYears: 74},
			wantFrail:  false,
			wantMonths: 888,
		},
		{
			name:         "pregnancy carried, never inferred",
			patient:      Patient{AgeYears: 28, Sex: "F", Pregnant: true},
			wantMonths:   336,
			wantPregnant: true,
		},
		{
			name:       "infant",
			patient:    Patient{AgeYears: 1},
			wantMonths: 12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := tt.patient.Profile()
			if profile.FrailElderly != tt.wantFrail {
				t.Errorf("FrailElderly = %v, want %v", profile.FrailElderly, tt.wantFrail)
			}
			if profile.AgeMonths != tt.wantMonths {
				t.Errorf("AgeMonths = %d, want %d", profile.AgeMonths, tt.wantMonths)
			}
			if profile.Pregnant != tt.wantPregnant {
				t.Errorf("Pregnant = %v, want %v", profile.Pregnant, tt.wantPregnant)
			}
			if profile.AgeYears != tt.patient.AgeYears {
				t.Errorf("AgeYears = %d, want %d", profile.AgeYears, tt.patient.AgeYears)
			}
		})
	}
}
