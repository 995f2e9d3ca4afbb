package events

import (
	"net/http"
	"strconv"
	"time"

	"dev-events/db"
	"dev-events/models"
	"dev-events/rdx"
	"dev-events/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const slugCacheTTL = 5 * time.Minute

func slugCacheKey(slug string) string {
	return "event:slug:" + slug
}

func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Parse pagination query parameters (page and limit)
	page := 1
	limit := 10

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage > 0 {
			page = parsedPage
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 && parsedLimit <= 100 {
			limit = parsedLimit
		}
	}

	skip := int64((page - 1) * limit)
	int64Limit := int64(limit)

	cursor, err := db.EventsCollection.Find(r.Context(), bson.M{}, &options.FindOptions{
		Skip:  &skip,
		Limit: &int64Limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	defer cursor.Close(r.Context())

	events := []models.Event{}
	if err = cursor.All(r.Context(), &events); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode events")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

func GetEventsCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := db.EventsCollection.CountDocuments(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count events")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"count": count})
}

func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var event models.Event
	err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}

// GetEventBySlug serves the public event page lookup. Slug pages are the
// hot read path, so they are cached in Redis and invalidated on write.
func GetEventBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	var event models.Event
	if rdx.GetCachedJSON(r.Context(), slugCacheKey(slug), &event) {
		utils.RespondWithJSON(w, http.StatusOK, event)
		return
	}

	err := db.EventsCollection.FindOne(r.Context(), bson.M{"slug": slug}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	rdx.CacheJSON(r.Context(), slugCacheKey(slug), event, slugCacheTTL)
	utils.RespondWithJSON(w, http.StatusOK, event)
}
