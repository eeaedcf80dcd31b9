package request

import (
	"testing"

	"towdispatch/internal/domain/pricing"
)

func TestCreateBookingRequest_ToCommand(t *testing.T) {
	r := CreateBookingRequest{
		Pickup:     LocationRequest{Address: " 12 Breakdown Lane "},
		Dropoff:    LocationRequest{Address: "Central Workshop"},
		Customer:   ContactRequest{Name: " Ada ", Phone: " +61400000001 "},
		DistanceKm: 38,
	}
	cmd := r.ToCommand()
	if cmd.Pickup.Address != "12 Breakdown Lane" {
		t.Fatalf("expected trimmed address, got %q", cmd.Pickup.Address)
	}
	if cmd.Customer.Name != "Ada" || cmd.Customer.Phone != "+61400000001" {
		t.Fatalf("expected trimmed contact, got %+v", cmd.Customer)
	}
	if cmd.Period != pricing.PeriodBusinessHours {
		t.Fatalf("expected business hours default, got %q", cmd.Period)
	}
	if cmd.ActorID != "system" {
		t.Fatalf("expected system actor default, got %q", cmd.ActorID)
	}

	r2 := CreateBookingRequest{Period: " night ", ActorID: " ops-1 "}
	cmd2 := r2.ToCommand()
	if cmd2.Period != pricing.PeriodNight {
		t.Fatalf("expected night, got %q", cmd2.Period)
	}
	if cmd2.ActorID != "ops-1" {
		t.Fatalf("expected ops-1, got %q", cmd2.ActorID)
	}
}
