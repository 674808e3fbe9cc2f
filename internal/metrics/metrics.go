package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ticketing_gateway",
			Name:      "booking_started_total",
			Help:      "Count of booking sessions opened from a Book click.",
		},
	)

	bookingCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticketing_gateway",
			Name:      "booking_completed_total",
			Help:      "Count of booking flows that reached the receipt, by payment method.",
		},
		[]string{"method"},
	)

	chatMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ticketing_gateway",
			Name:      "chat_messages_total",
			Help:      "Count of chatbot messages relayed upstream.",
		},
	)

	upstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticketing_gateway",
			Name:      "upstream_failures_total",
			Help:      "Count of failed calls against the transport backend.",
		},
		[]string{"endpoint"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingStarted, bookingCompleted, chatMessages, upstreamFailures)
	})
}

func IncBookingStarted() {
	bookingStarted.Inc()
}

func IncBookingCompleted(method string) {
	bookingCompleted.WithLabelValues(method).Inc()
}

func IncChatMessage() {
	chatMessages.Inc()
}

func IncUpstreamFailure(endpoint string) {
	upstreamFailures.WithLabelValues(endpoint).Inc()
}
