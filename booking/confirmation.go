package booking

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"dev-events/db"
	"dev-events/globals"
	"dev-events/models"
	"dev-events/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// confirmationPayload returns the signed payload encoded in confirmation
// QR codes: bookingid|eventid|email|signature. Venues can verify the
// signature offline with the shared secret.
func confirmationPayload(b models.Booking) string {
	data := fmt.Sprintf("%s|%s|%s", b.BookingID, b.EventID, b.Email)

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

func findBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (models.Booking, bool) {
	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": ps.ByName("bookingid")}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return booking, false
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return booking, false
	}
	return booking, true
}

// BookingQR serves the confirmation QR code as a PNG.
func BookingQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, ok := findBooking(w, r, ps)
	if !ok {
		return
	}

	png, err := qrcode.Encode(confirmationPayload(booking), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// BookingConfirmationPDF renders a printable confirmation with the event
// details and the signed QR code embedded.
func BookingConfirmationPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, ok := findBooking(w, r, ps)
	if !ok {
		return
	}

	// the event may have been deleted since the booking was made
	var event models.Event
	eventFound := true
	err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": booking.EventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		eventFound = false
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	qrPNG, err := qrcode.Encode(confirmationPayload(booking), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if eventFound {
		pdf.Cell(0, 10, fmt.Sprintf("Event: %s", event.Title))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Venue: %s, %s", event.Venue, event.Location))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("When: %s at %s", event.Date, event.Time))
		pdf.Ln(8)
	} else {
		pdf.Cell(0, 10, fmt.Sprintf("Event: %s (no longer listed)", booking.EventID))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Booked by: %s", booking.Email))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+booking.BookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
