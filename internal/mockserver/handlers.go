package mockserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/google/uuid"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Message: message})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if strings.TrimSpace(req.Filename) == "" || req.FileBase64 == "" {
		writeError(w, http.StatusBadRequest, "filename and fileBase64 are required")
		return
	}

	blobName := uuid.NewString()
	writeJSON(w, http.StatusOK, models.UploadResult{
		BlobName: blobName,
		FileURL:  fmt.Sprintf("http://%s/files/%s/%s", r.Host, blobName, req.Filename),
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	h.store.add(models.JournalEntry{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Text:       req.Text,
		Visibility: req.Visibility,
		UploadDate: req.UploadDate,
		Filename:   req.Filename,
		Filetype:   req.Filetype,
		FileURL:    req.FileURL,
	})

	writeJSON(w, http.StatusCreated, apiResponse{Success: true})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ListEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.get").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Entries []models.JournalEntry `json:"entries"`
	}{Entries: h.store.list(req.UserID)})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	id := entryIdentifier(req.ID, req.EntryID)
	if id == "" {
		writeError(w, http.StatusBadRequest, "entry id is required")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	if !h.store.update(id, req.Text, req.Visibility) {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DeleteEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	id := entryIdentifier(req.ID, req.EntryID)
	if id == "" {
		writeError(w, http.StatusBadRequest, "entry id is required")
		return
	}

	if !h.store.delete(id) {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// entryIdentifier resolves the dual-key identifier convention: clients may
// send the target under `id`, `entryId`, or both.
func entryIdentifier(id string, entryID string) string {
	if strings.TrimSpace(id) != "" {
		return strings.TrimSpace(id)
	}
	return strings.TrimSpace(entryID)
}
