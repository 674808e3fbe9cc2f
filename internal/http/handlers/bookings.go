package handlers

import (
	"net/http"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
	"github.com/gin-gonic/gin"
)

type startBookingRequest struct {
	Site        string  `json:"site"`
	TransportID string  `json:"transport_id"`
	Price       float64 `json:"price"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Mode        string  `json:"mode"`
}

type travelerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Travelers int    `json:"travelers"`
}

type paymentRequest struct {
	Method string `json:"method"`
}

// StartBooking opens a fresh booking session for a Book click.
func (h *Handlers) StartBooking(c *gin.Context) {
	var req startBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.Bookings.Start(req.Site, req.TransportID, req.Price, req.Origin, req.Destination, req.Mode)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handlers) GetBooking(c *gin.Context) {
	view, err := h.Bookings.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) ConfirmTraveler(c *gin.Context) {
	var req travelerRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.Bookings.ConfirmTraveler(c.Param("id"), req.Name, req.Email, req.Phone, req.Travelers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) ConfirmPayment(c *gin.Context) {
	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.Bookings.ConfirmPayment(c.Param("id"), req.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) DismissBooking(c *gin.Context) {
	view, err := h.Bookings.Dismiss(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) AcknowledgeBooking(c *gin.Context) {
	view, err := h.Bookings.Acknowledge(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) CloseBooking(c *gin.Context) {
	if err := h.Bookings.Close(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// TicketPDF streams the generated ticket for a completed booking.
func (h *Handlers) TicketPDF(c *gin.Context) {
	receipt, err := h.Bookings.ReceiptFor(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdf, filename, err := services.TicketService{}.BuildTicketPDF(receipt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
