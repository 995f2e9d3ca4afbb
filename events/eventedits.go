package events

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"dev-events/db"
	"dev-events/globals"
	"dev-events/models"
	"dev-events/mq"
	"dev-events/rdx"
	"dev-events/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// applyEventFields copies the submitted values onto the stored event and
// returns the list of changed field names for the normalizer. Derived and
// system-owned fields cannot be set directly.
func applyEventFields(event *models.Event, payload map[string]json.RawMessage) ([]string, error) {
	changed := make([]string, 0, len(payload))

	for field, raw := range payload {
		var dest any
		switch field {
		case "title":
			dest = &event.Title
		case "description":
			dest = &event.Description
		case "overview":
			dest = &event.Overview
		case "venue":
			dest = &event.Venue
		case "location":
			dest = &event.Location
		case "date":
			dest = &event.Date
		case "time":
			dest = &event.Time
		case "mode":
			dest = &event.Mode
		case "audience":
			dest = &event.Audience
		case "organizer":
			dest = &event.Organizer
		case "agenda":
			dest = &event.Agenda
		case "tags":
			dest = &event.Tags
		default:
			return nil, fmt.Errorf("field %q cannot be updated", field)
		}
		if err := json.Unmarshal(raw, dest); err != nil {
			return nil, fmt.Errorf("invalid value for field %q", field)
		}
		changed = append(changed, field)
	}

	return changed, nil
}

// EditEvent applies a partial JSON update. Only the submitted fields run
// through the normalizer, so changing the venue does not re-derive the
// slug, but changing the title does.
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	if eventID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing event ID")
		return
	}

	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	var event models.Event
	err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	if event.CreatorID != requestingUserID {
		log.Printf("User %s attempted to edit event %s they did not create", requestingUserID, eventID)
		utils.RespondWithError(w, http.StatusForbidden, "Unauthorized to edit this event")
		return
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if len(payload) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	oldSlug := event.Slug

	changed, err := applyEventFields(&event, payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := NormalizeEvent(&event, changed); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	event.UpdatedAt = time.Now().UTC()

	if _, err := db.EventsCollection.ReplaceOne(r.Context(), bson.M{"eventid": eventID}, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "An event with this slug already exists")
			return
		}
		log.Printf("Error updating event %s: %v", eventID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating event")
		return
	}

	rdx.Invalidate(r.Context(), slugCacheKey(oldSlug), slugCacheKey(event.Slug))

	go mq.Emit(globals.Ctx, "event-updated", mq.Index{
		EntityType: "event", EntityId: eventID, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, event)
}

// UpdateEventBanner replaces the banner image for an event.
func UpdateEventBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	var event models.Event
	err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	if event.CreatorID != requestingUserID {
		utils.RespondWithError(w, http.StatusForbidden, "Unauthorized to edit this event")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	bannerFile, _, err := r.FormFile("banner")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Banner file missing")
		return
	}
	defer bannerFile.Close()

	filename, err := utils.SaveBanner(bannerFile, eventpicUploadPath, eventID)
	if err != nil {
		log.Printf("Error saving banner for event %s: %v", eventID, err)
		utils.RespondWithError(w, http.StatusBadRequest, "Error saving banner")
		return
	}

	_, err = db.EventsCollection.UpdateOne(r.Context(),
		bson.M{"eventid": eventID},
		bson.M{"$set": bson.M{"bannerimage": filename, "updated_at": time.Now().UTC()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating event")
		return
	}

	rdx.Invalidate(r.Context(), slugCacheKey(event.Slug))

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bannerimage": filename})
}

// DeleteEvent removes an event. Existing bookings are kept as a record of
// the reservation; new bookings against the id will fail the reference
// check.
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	var event models.Event
	err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	if event.CreatorID != requestingUserID {
		log.Printf("User %s attempted to delete event %s they did not create", requestingUserID, eventID)
		utils.RespondWithError(w, http.StatusForbidden, "Unauthorized to delete this event")
		return
	}

	if _, err := db.EventsCollection.DeleteOne(r.Context(), bson.M{"eventid": eventID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting event")
		return
	}

	rdx.Invalidate(r.Context(), slugCacheKey(event.Slug))

	go mq.Emit(globals.Ctx, "event-deleted", mq.Index{
		EntityType: "event", EntityId: eventID, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Event deleted successfully"})
}
