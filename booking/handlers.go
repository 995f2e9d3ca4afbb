package booking

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"dev-events/db"
	"dev-events/globals"
	"dev-events/models"
	"dev-events/mq"
	"dev-events/utils"
	"dev-events/validation"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// statusForValidationError maps the validator's sentinel errors onto HTTP
// statuses. A failed lookup is the store's fault, not the caller's.
func statusForValidationError(err error) int {
	switch {
	case errors.Is(err, validation.ErrLookupFailed):
		return http.StatusServiceUnavailable
	case errors.Is(err, validation.ErrDanglingReference):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := ValidateBooking(r.Context(), &booking, LookupEventByID); err != nil {
		utils.RespondWithError(w, statusForValidationError(err), err.Error())
		return
	}

	booking.BookingID = utils.GetUUID()
	booking.CreatedAt = time.Now().UTC()
	booking.UpdatedAt = booking.CreatedAt

	if _, err := db.BookingsCollection.InsertOne(r.Context(), booking); err != nil {
		log.Printf("Error inserting booking into MongoDB: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving booking")
		return
	}

	notifySubscribers(booking.EventID, "booking-created", booking)
	go mq.Emit(globals.Ctx, "booking-created", mq.Index{
		EntityType: "booking", EntityId: booking.BookingID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// GetEventBookings lists the bookings for one event, newest first.
func GetEventBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	cursor, err := db.BookingsCollection.Find(r.Context(), bson.M{"eventid": eventID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	defer cursor.Close(r.Context())

	bookings := []models.Booking{}
	if err := cursor.All(r.Context(), &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// UpdateBooking applies a partial update to a booking. The event-existence
// check runs again only when the event reference itself changes.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	var payload bookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if payload.EventID == nil && payload.Email == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := applyBookingUpdate(r.Context(), &booking, payload, LookupEventByID); err != nil {
		utils.RespondWithError(w, statusForValidationError(err), err.Error())
		return
	}
	booking.UpdatedAt = time.Now().UTC()

	if _, err := db.BookingsCollection.ReplaceOne(r.Context(), bson.M{"bookingid": bookingID}, booking); err != nil {
		log.Printf("Error updating booking %s: %v", bookingID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating booking")
		return
	}

	go mq.Emit(globals.Ctx, "booking-updated", mq.Index{
		EntityType: "booking", EntityId: bookingID, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, booking)
}

func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	if _, err := db.BookingsCollection.DeleteOne(r.Context(), bson.M{"bookingid": bookingID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting booking")
		return
	}

	notifySubscribers(booking.EventID, "booking-cancelled", booking)
	go mq.Emit(globals.Ctx, "booking-deleted", mq.Index{
		EntityType: "booking", EntityId: bookingID, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Booking deleted successfully"})
}
