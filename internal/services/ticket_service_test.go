package services

import (
	"bytes"
	"testing"
	"time"
)

func TestBuildTicketPDF(t *testing.T) {
	r := Receipt{
		Passenger:   "Arjun Rao",
		Email:       "arjun@example.com",
		Phone:       "+91 9812345678",
		TransportID: "FL2",
		Site:        "Air India AI-805",
		Mode:        "flight",
		Travelers:   2,
		Total:       7800,
		Route:       "Delhi → Mumbai",
		IssuedAt:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	pdf, filename, err := TicketService{}.BuildTicketPDF(r)
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not look like a PDF document")
	}
	if filename != "Arjun_Rao_SmartTransport_Ticket.pdf" {
		t.Errorf("unexpected filename: %q", filename)
	}
}
