package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/metrics"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/utils"

	"github.com/google/uuid"
)

// BookingState names one step of the modal flow.
type BookingState string

const (
	StateTravelerDetails BookingState = "traveler_details"
	StatePayment         BookingState = "payment"
	StateProcessing      BookingState = "processing"
	StateSuccess         BookingState = "success"
	StateReceipt         BookingState = "receipt"
)

// PaymentMethodUPI shows a static QR and waits for a manual dismiss;
// every other method runs the scripted verification messages.
const PaymentMethodUPI = "UPI"

const upiQRImage = "/static/scanner.jpg"

// Receipt is the completed booking as shown on the ticket.
type Receipt struct {
	Passenger   string    `json:"passenger"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TransportID string    `json:"transport_id"`
	Site        string    `json:"site"`
	Mode        string    `json:"mode"`
	Travelers   int       `json:"travelers"`
	Total       float64   `json:"total"`
	Route       string    `json:"route"`
	IssuedAt    time.Time `json:"issued_at"`
}

// BookingView is the JSON shape the UI polls and renders from.
type BookingView struct {
	ID            string       `json:"id"`
	State         BookingState `json:"state"`
	Site          string       `json:"site"`
	TransportID   string       `json:"transport_id"`
	UnitPrice     float64      `json:"unit_price"`
	Route         string       `json:"route,omitempty"`
	Travelers     int          `json:"travelers,omitempty"`
	Total         float64      `json:"total,omitempty"`
	PaymentMethod string       `json:"payment_method,omitempty"`
	QRImage       string       `json:"qr_image,omitempty"`
	ProcessingLog []string     `json:"processing_log,omitempty"`
	Receipt       *Receipt     `json:"receipt,omitempty"`
}

type bookingDraft struct {
	site        string
	transportID string
	unitPrice   float64
	origin      string
	destination string
	mode        string

	name      string
	email     string
	phone     string
	travelers int

	method string
	total  float64
}

type bookingSession struct {
	id      string
	state   BookingState
	draft   *bookingDraft
	receipt *Receipt
	steps   []string
	qrImage string
	timers  []*time.Timer
	touched time.Time
}

// BookingService owns the booking flow. Each Book click opens its own
// session object with an explicit lifecycle: created on start, consumed
// on receipt close. This replaces the original single mutable
// currentBooking slot.
type BookingService struct {
	backend   Backend
	ttl       time.Duration
	stepDelay time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*bookingSession
}

func NewBookingService(backend Backend, ttl time.Duration) *BookingService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &BookingService{
		backend:   backend,
		ttl:       ttl,
		stepDelay: 700 * time.Millisecond,
		now:       time.Now,
		sessions:  make(map[string]*bookingSession),
	}
}

// Start opens a session from a Book click on a result or offer row.
// site is either the transport name (search results) or the website
// name (comparison offers).
func (s *BookingService) Start(site, transportID string, unitPrice float64, origin, destination, mode string) (BookingView, error) {
	if strings.TrimSpace(transportID) == "" {
		return BookingView{}, domain.ValidationError{Field: "transport_id", Msg: "must not be empty"}
	}

	sess := &bookingSession{
		id:    uuid.NewString(),
		state: StateTravelerDetails,
		draft: &bookingDraft{
			site:        site,
			transportID: transportID,
			unitPrice:   unitPrice,
			origin:      origin,
			destination: destination,
			mode:        mode,
			travelers:   1,
		},
		touched: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	metrics.IncBookingStarted()
	utils.LogEvent("", "booking", "start", "session="+sess.id+" transport="+transportID)
	return s.viewLocked(sess), nil
}

// ConfirmTraveler captures traveler details and moves to payment. It
// never proceeds past validation with a missing field or a traveler
// count below one; the session stays where it was.
func (s *BookingService) ConfirmTraveler(id, name, email, phone string, travelers int) (BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return BookingView{}, err
	}
	if sess.state != StateTravelerDetails {
		return BookingView{}, domain.ConflictError{Resource: "booking", Msg: "traveler details already confirmed"}
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" || travelers < 1 {
		return BookingView{}, domain.ValidationError{Msg: "please fill all traveler details"}
	}

	sess.draft.name = name
	sess.draft.email = email
	sess.draft.phone = phone
	sess.draft.travelers = travelers
	sess.draft.total = domain.TotalFare(sess.draft.unitPrice, travelers)
	sess.state = StatePayment
	sess.touched = s.now()

	return s.viewLocked(sess), nil
}

// ConfirmPayment starts the simulated verification. The backend /book
// call is fired alongside it and its outcome never gates the flow:
// this demo decoupling is deliberate, a failure is only logged and
// counted.
func (s *BookingService) ConfirmPayment(id, method string) (BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return BookingView{}, err
	}
	if sess.state != StatePayment {
		return BookingView{}, domain.ConflictError{Resource: "booking", Msg: "payment not open for this booking"}
	}

	method = strings.TrimSpace(method)
	if method == "" {
		method = PaymentMethodUPI
	}

	sess.draft.method = method
	sess.state = StateProcessing
	sess.touched = s.now()

	if method == PaymentMethodUPI {
		sess.qrImage = upiQRImage
		sess.steps = append(sess.steps,
			"Scan the UPI QR to complete payment",
			"Waiting for payment confirmation…",
		)
	} else {
		sess.steps = append(sess.steps,
			fmt.Sprintf("Initializing %s payment of ₹%.2f...", method, sess.draft.total))
		s.scheduleStep(sess, s.stepDelay, "Securely verifying transaction with your bank...")
		s.scheduleStep(sess, 2*s.stepDelay,
			fmt.Sprintf("Payment processed for %s.", sess.draft.name))
	}

	go s.logBooking(sess.draft.transportID)

	return s.viewLocked(sess), nil
}

// scheduleStep registers a cancellable timer; dismissing the overlay
// stops pending steps instead of firing them into a closed view.
// Caller holds s.mu.
func (s *BookingService) scheduleStep(sess *bookingSession, after time.Duration, msg string) {
	id := sess.id
	t := time.AfterFunc(after, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		cur, ok := s.sessions[id]
		if !ok || cur.state != StateProcessing {
			return
		}
		cur.steps = append(cur.steps, msg)
	})
	sess.timers = append(sess.timers, t)
}

func (s *BookingService) logBooking(transportID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.backend.Book(ctx, transportID); err != nil {
		metrics.IncUpstreamFailure("book")
		log.Printf("warning: failed to log booking for %s: %v", transportID, err)
	}
}

// Get returns the current view; the UI polls it while processing.
func (s *BookingService) Get(id string) (BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return BookingView{}, err
	}
	return s.viewLocked(sess), nil
}

// Dismiss closes the processing overlay. Pending simulated steps are
// cancelled and, with a draft still present, the flow moves to success.
func (s *BookingService) Dismiss(id string) (BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return BookingView{}, err
	}
	if sess.state != StateProcessing {
		return BookingView{}, domain.ConflictError{Resource: "booking", Msg: "no processing overlay to dismiss"}
	}

	stopTimers(sess)
	if sess.draft != nil {
		sess.state = StateSuccess
	}
	sess.touched = s.now()
	return s.viewLocked(sess), nil
}

// Acknowledge closes the success modal and populates the receipt.
func (s *BookingService) Acknowledge(id string) (BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return BookingView{}, err
	}
	if sess.state != StateSuccess {
		return BookingView{}, domain.ConflictError{Resource: "booking", Msg: "booking has not reached success"}
	}

	d := sess.draft
	sess.receipt = &Receipt{
		Passenger:   d.name,
		Email:       d.email,
		Phone:       d.phone,
		TransportID: d.transportID,
		Site:        d.site,
		Mode:        d.mode,
		Travelers:   d.travelers,
		Total:       d.total,
		Route:       d.origin + " → " + d.destination,
		IssuedAt:    s.now(),
	}
	sess.state = StateReceipt
	sess.touched = s.now()

	metrics.IncBookingCompleted(d.method)
	utils.LogEvent("", "booking", "completed", "session="+sess.id+" transport="+d.transportID)
	return s.viewLocked(sess), nil
}

// Close ends the flow and clears the draft. The session is gone
// afterwards; the next Book click starts a fresh one.
func (s *BookingService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return err
	}
	stopTimers(sess)
	sess.draft = nil
	delete(s.sessions, id)
	return nil
}

// ReceiptFor hands out the receipt for the ticket download; only a
// session in the receipt state has one.
func (s *BookingService) ReceiptFor(id string) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return Receipt{}, err
	}
	if sess.state != StateReceipt || sess.receipt == nil {
		return Receipt{}, domain.ConflictError{Resource: "booking", Msg: "receipt not ready"}
	}
	return *sess.receipt, nil
}

// PurgeExpired drops sessions idle past the TTL.
func (s *BookingService) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			stopTimers(sess)
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("purged %d expired booking sessions", removed)
	}
	return removed
}

// get requires s.mu held.
func (s *BookingService) get(id string) (*bookingSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking session"}
	}
	return sess, nil
}

// viewLocked requires s.mu held (Start holds no lock but owns the
// session exclusively at that point).
func (s *BookingService) viewLocked(sess *bookingSession) BookingView {
	v := BookingView{
		ID:    sess.id,
		State: sess.state,
	}
	if d := sess.draft; d != nil {
		v.Site = d.site
		v.TransportID = d.transportID
		v.UnitPrice = d.unitPrice
		v.Route = d.origin + " → " + d.destination
		v.Travelers = d.travelers
		v.Total = d.total
		v.PaymentMethod = d.method
	}
	v.QRImage = sess.qrImage
	if len(sess.steps) > 0 {
		v.ProcessingLog = append([]string(nil), sess.steps...)
	}
	v.Receipt = sess.receipt
	return v
}

func stopTimers(sess *bookingSession) {
	for _, t := range sess.timers {
		t.Stop()
	}
	sess.timers = nil
}
