package validator

import (
	"testing"

	"dealboard/internal/models"
)

func TestValidateStruct(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		deal    models.RawDeal
		wantErr bool
	}{
		{
			name: "valid deal",
			deal: models.RawDeal{Country: "ES", Title: "Juego A", Link: "https://store.example.com/a"},
		},
		{
			name: "valid without link",
			deal: models.RawDeal{Country: "US", Title: "Juego B"},
		},
		{
			name:    "missing title",
			deal:    models.RawDeal{Country: "ES"},
			wantErr: true,
		},
		{
			name:    "missing country",
			deal:    models.RawDeal{Title: "Juego C"},
			wantErr: true,
		},
		{
			name:    "malformed link",
			deal:    models.RawDeal{Country: "ES", Title: "Juego D", Link: "not a url"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.deal)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
