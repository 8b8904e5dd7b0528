package contact

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uxstudio/contacts/internal/response"
)

// maxUploadSize bounds the in-memory portion of multipart parsing.
const maxUploadSize = 10 << 20 // 10 MiB

// Handler holds HTTP handlers for contact endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new contact Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create godoc
//
//	@Summary		Create a contact
//	@Description	Creates a contact from a multipart form, optionally with a profile picture.
//	@Tags			contacts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Contact name"
//	@Param			email		formData	string	true	"Contact email (unique)"
//	@Param			phone		formData	string	false	"Phone number"
//	@Param			isFavourite	formData	boolean	false	"Favourite flag"
//	@Param			picture		formData	file	false	"Profile picture"
//	@Success		201	{object}	response.Envelope{data=Contact}
//	@Failure		400	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/contacts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, pic, cleanup, err := parseContactForm(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	defer cleanup()

	c, err := h.svc.Create(r.Context(), in, pic)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Created(w, c)
}

// List godoc
//
//	@Summary	List contacts
//	@Tags		contacts
//	@Produce	json
//	@Success	200	{object}	response.Envelope{data=[]Contact}
//	@Failure	500	{object}	response.Envelope
//	@Router		/contacts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, contacts)
}

// GetByID godoc
//
//	@Summary	Get a contact
//	@Tags		contacts
//	@Produce	json
//	@Param		id	path		string	true	"Contact ID"
//	@Success	200	{object}	response.Envelope{data=Contact}
//	@Failure	404	{object}	response.Envelope
//	@Failure	500	{object}	response.Envelope
//	@Router		/contacts/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, c)
}

// Update godoc
//
//	@Summary		Update a contact
//	@Description	Overwrites name, email, phone and favourite flag; replaces the picture when a new file is uploaded.
//	@Tags			contacts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string	true	"Contact ID"
//	@Param			name		formData	string	true	"Contact name"
//	@Param			email		formData	string	true	"Contact email (unique)"
//	@Param			phone		formData	string	false	"Phone number"
//	@Param			isFavourite	formData	boolean	false	"Favourite flag"
//	@Param			picture		formData	file	false	"Profile picture"
//	@Success		200	{object}	response.Envelope{data=Contact}
//	@Failure		400	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/contacts/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	in, pic, cleanup, err := parseContactForm(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	defer cleanup()

	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in, pic)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, c)
}

// Delete godoc
//
//	@Summary	Delete a contact
//	@Tags		contacts
//	@Param		id	path	string	true	"Contact ID"
//	@Success	204
//	@Failure	404	{object}	response.Envelope
//	@Failure	500	{object}	response.Envelope
//	@Router		/contacts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	response.NoContent(w)
}

// parseContactForm binds the multipart form into an Input and an optional
// picture payload. cleanup closes the uploaded file and must be deferred by
// the caller.
func parseContactForm(r *http.Request) (Input, *PictureUpload, func(), error) {
	noop := func() {}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return Input{}, nil, noop, errors.New("request must be multipart/form-data")
	}

	in := Input{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		IsFavourite: r.FormValue("isFavourite") == "true",
	}
	if phone := r.FormValue("phone"); phone != "" {
		in.Phone = &phone
	}

	file, header, err := r.FormFile("picture")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil, noop, nil
	}
	if err != nil {
		return Input{}, nil, noop, errors.New("invalid picture upload")
	}

	pic := &PictureUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}
	return in, pic, func() { _ = file.Close() }, nil
}

// writeServiceError maps service errors to HTTP status codes: validation and
// duplicate-email failures are user-correctable 400s, missing contacts are
// 404s, everything else is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalid), errors.Is(err, ErrDuplicateEmail):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w)
	}
}
