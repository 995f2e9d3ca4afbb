package routes

import (
	"net/http"

	"dev-events/auth"
	"dev-events/booking"
	"dev-events/events"
	"dev-events/middleware"
	"dev-events/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddEventsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/events", rl.Limit(events.GetEvents))
	router.GET("/api/events/count", rl.Limit(events.GetEventsCount))
	router.GET("/api/events/event/:eventid", events.GetEvent)
	router.GET("/api/events/slug/:slug", events.GetEventBySlug)
	router.POST("/api/events/event", middleware.Authenticate(events.CreateEvent))
	router.PUT("/api/events/event/:eventid", middleware.Authenticate(events.EditEvent))
	router.PUT("/api/events/event/:eventid/banner", middleware.Authenticate(events.UpdateEventBanner))
	router.DELETE("/api/events/event/:eventid", middleware.Authenticate(events.DeleteEvent))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(booking.CreateBooking))
	router.GET("/api/bookings/:bookingid", booking.GetBooking)
	router.GET("/api/bookings/:bookingid/qr", booking.BookingQR)
	router.GET("/api/bookings/:bookingid/confirmation", booking.BookingConfirmationPDF)
	router.PUT("/api/bookings/:bookingid", rl.Limit(booking.UpdateBooking))
	router.DELETE("/api/bookings/:bookingid", booking.DeleteBooking)
	router.GET("/api/events/event/:eventid/bookings", middleware.Authenticate(booking.GetEventBookings))

	router.GET("/ws/events/:eventid/bookings", booking.HandleEventBookingsWS)
}
