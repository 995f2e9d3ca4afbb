package events

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"dev-events/db"
	"dev-events/globals"
	"dev-events/models"
	"dev-events/mq"
	"dev-events/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

var eventpicUploadPath = "./static/eventpic"

// CreateEvent accepts a multipart form with an "event" JSON field and an
// optional "banner" image. The full normalization pipeline runs before
// the insert; slug uniqueness is left to the index on the collection.
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	if r.FormValue("event") == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing event data")
		return
	}

	var event models.Event
	if err := json.Unmarshal([]byte(r.FormValue("event")), &event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	if err := NormalizeEvent(&event, AllFields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	event.EventID = utils.GetUUID()
	event.CreatorID = requestingUserID
	event.CreatedAt = time.Now().UTC()
	event.UpdatedAt = event.CreatedAt

	// Handle the banner image upload (if present)
	bannerFile, _, err := r.FormFile("banner")
	if err != nil && err != http.ErrMissingFile {
		utils.RespondWithError(w, http.StatusBadRequest, "Error retrieving banner file")
		return
	}
	if bannerFile != nil {
		defer bannerFile.Close()

		filename, err := utils.SaveBanner(bannerFile, eventpicUploadPath, event.EventID)
		if err != nil {
			log.Printf("Error saving banner for event %s: %v", event.EventID, err)
			utils.RespondWithError(w, http.StatusBadRequest, "Error saving banner")
			return
		}
		event.BannerImage = filename
	}

	if _, err := db.EventsCollection.InsertOne(r.Context(), event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "An event with this slug already exists")
			return
		}
		log.Printf("Error inserting event into MongoDB: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving event")
		return
	}

	go mq.Emit(globals.Ctx, "event-created", mq.Index{
		EntityType: "event", EntityId: event.EventID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, event)
}
