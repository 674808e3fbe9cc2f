package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/utils"
	"github.com/phpdave11/gofpdf"
)

// TicketService renders the downloadable ticket PDF for a completed
// booking receipt.
type TicketService struct{}

func (TicketService) BuildTicketPDF(r Receipt) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Smart Transport Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SMART TRANSPORT TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", orDash(r.Passenger)),
		fmt.Sprintf("Email        : %s", orDash(r.Email)),
		fmt.Sprintf("Phone        : %s", orDash(r.Phone)),
		fmt.Sprintf("Transport ID : %s", orDash(r.TransportID)),
		fmt.Sprintf("Booked via   : %s", orDash(r.Site)),
		fmt.Sprintf("Route        : %s", orDash(strings.ReplaceAll(r.Route, "→", "->"))),
		fmt.Sprintf("Travelers    : %d", r.Travelers),
		fmt.Sprintf("Total        : %s", utils.FormatINR(r.Total)),
		fmt.Sprintf("Issued       : %s", r.IssuedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry a valid photo ID along with this ticket.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_SmartTransport_Ticket.pdf", safeFilenamePart(r.Passenger))
	return buf.Bytes(), filename, nil
}

func orDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "ticket"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
