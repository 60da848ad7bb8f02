package http

import (
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		h.writeBadJSON(w)
		return
	}
	// the store assigns identifiers
	user.ID = ""

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", created.ID).Msg("user created")
	utils.WriteJSON(w, created.Public(), http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUser").Str("user_id", id).Msg("error getting user")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) findUser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lookup := models.UserLookup{
		Username: query.Get("username"),
		Email:    query.Get("email"),
	}

	user, err := h.services.UserService.FindUser(r.Context(), lookup.Username, lookup.Email)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.findUser").Any("lookup", lookup).Msg("error finding user")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		h.writeBadJSON(w)
		return
	}
	// the path is authoritative for which record is replaced
	user.ID = chi.URLParam(r, "id")

	updated, err := h.services.UserService.UpdateUser(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Str("user_id", user.ID).Msg("error updating user")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated.Public(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteUser").Str("user_id", id).Msg("error deleting user")
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
