package http

import (
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var group models.Group
	if err := utils.DecodeJSON(w, r, &group); err != nil {
		log.Err(err).Str("func", "*Handler.createGroup").Msg("Invalid JSON was passed")
		h.writeBadJSON(w)
		return
	}

	created, err := h.services.GroupService.CreateGroup(r.Context(), group)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createGroup").Msg("error creating group")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	group, err := h.services.GroupService.GetGroup(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getGroup").Str("group_id", id).Msg("error getting group")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, group, http.StatusOK)
}
