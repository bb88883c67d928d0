package validatorx

import (
	"testing"

	"github.com/muhammadheryan/tamirse/model"
)

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		wantErr bool
	}{
		{
			name: "valid signup",
			in:   &model.SignupRequest{Name: "Ahmet", Email: "ahmet@example.com", Password: "secret1"},
		},
		{
			name:    "short password",
			in:      &model.SignupRequest{Name: "Ahmet", Email: "ahmet@example.com", Password: "abc"},
			wantErr: true,
		},
		{
			name:    "rating above five",
			in:      &model.RateRequest{Rating: 6},
			wantErr: true,
		},
		{
			name:    "create request without issues",
			in:      &model.CreateRequestRequest{ShopID: "x", Vehicle: &model.VehicleInput{Brand: "Fiat", Model: "Egea"}, IssueDescription: "noise"},
			wantErr: true,
		},
		{
			name:    "unknown urgency",
			in:      &model.CreateRequestRequest{ShopID: "x", Vehicle: &model.VehicleInput{Brand: "Fiat", Model: "Egea"}, IssueDescription: "noise", SelectedIssues: []string{"Brake"}, Urgency: "asap"},
			wantErr: true,
		},
		{
			name:    "pay with zero amount",
			in:      &model.PayRequest{PaymentMethod: "card"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsUUID(t *testing.T) {
	if !IsUUID("3f1c2a8e-7b5d-4c1e-9a2f-6d8e0b4c7a91") {
		t.Fatalf("valid uuid rejected")
	}
	if IsUUID("42") || IsUUID("") {
		t.Fatalf("invalid uuid accepted")
	}
}
