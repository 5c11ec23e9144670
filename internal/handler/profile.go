package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/service"
	"github.com/msomdec/youth-portal/internal/view"
)

// maxUploadBody caps the multipart body; the image itself is limited by
// the image service.
const maxUploadBody = 6 << 20

// Flash messages shown after a redirect back to a form.
const (
	MsgProfileSaved   = "Profile updated successfully."
	MsgImageSaved     = "Profile picture updated."
	MsgBasicInfoSaved = "Basic information updated successfully."
)

// ProfileHandler serves the profile and basic-info forms and the profile
// picture.
type ProfileHandler struct {
	clients  *Clients
	profiles *service.ProfileService
	images   *service.ImageService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(clients *Clients, profiles *service.ProfileService, images *service.ImageService) *ProfileHandler {
	return &ProfileHandler{clients: clients, profiles: profiles, images: images}
}

// HandleProfile renders the profile form pre-populated from the session,
// the current-user slot, or nothing.
// GET /profile
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	user := h.profiles.Load(r.Context(), c.Session, c.Users)

	var flash view.Flash
	switch r.URL.Query().Get("saved") {
	case "1":
		flash.Message = MsgProfileSaved
	case "image":
		flash.Message = MsgImageSaved
	}
	view.ProfilePage(c.Page(), user, flash).Render(r.Context(), w)
}

// HandleSaveProfile writes the profile form to the session and the
// current-user slot.
// POST /profile
func (h *ProfileHandler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	c := h.clients.For(r)
	current := h.profiles.Load(r.Context(), c.Session, c.Users)
	update := service.ProfileUpdate{
		FirstName:              formValue(r, "firstName"),
		LastName:               formValue(r, "lastName"),
		Email:                  formValue(r, "email"),
		Mobile:                 formValue(r, "mobile"),
		DateOfBirth:            dateOfBirth(r),
		Gender:                 r.FormValue("gender"),
		BloodGroup:             r.FormValue("bloodGroup"),
		AreaType:               domain.AreaType(r.FormValue("areaType")),
		YouthType:              r.FormValue("youthType"),
		SportsTalent:           r.FormValue("sportsTalent"),
		KheloIndiaParticipant:  r.FormValue("kheloIndiaParticipant") == "true",
		AreaOfInterest:         formValue(r, "areaOfInterest"),
		EducationQualification: formValue(r, "educationQualification"),
		Languages:              r.Form["languages"],
		ProfessionalSummary:    formValue(r, "professionalSummary"),
	}
	h.profiles.Save(r.Context(), c.Session, c.Users, update.Apply(current))

	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}

// HandleUploadImage stores a new profile picture and records its key.
// POST /profile/image
func (h *ProfileHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	current := h.profiles.Load(r.Context(), c.Session, c.Users)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		renderStatus(w, r, http.StatusBadRequest, view.ProfilePage(c.Page(), current, view.Flash{Message: "Image must be 5MB or smaller.", IsError: true}))
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		renderStatus(w, r, http.StatusBadRequest, view.ProfilePage(c.Page(), current, view.Flash{Message: "No image file provided.", IsError: true}))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	key, err := h.images.Upload(r.Context(), current.ProfileImage, http.DetectContentType(data), data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			renderStatus(w, r, http.StatusBadRequest, view.ProfilePage(c.Page(), current, view.Flash{Message: imageErrorMessage(err), IsError: true}))
			return
		}
		slog.Error("upload profile image", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	current.ProfileImage = key
	h.profiles.Save(r.Context(), c.Session, c.Users, current)

	http.Redirect(w, r, "/profile?saved=image", http.StatusSeeOther)
}

// HandleServeImage serves the current user's profile picture.
// GET /profile/image
func (h *ProfileHandler) HandleServeImage(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	user := h.profiles.Load(r.Context(), c.Session, c.Users)

	data, err := h.images.Get(r.Context(), user.ProfileImage)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("serve profile image", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", "private, no-cache")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// HandleBasicInfo renders the basic-info form.
// GET /basic-info
func (h *ProfileHandler) HandleBasicInfo(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	user := h.profiles.Load(r.Context(), c.Session, c.Users)

	var flash view.Flash
	if r.URL.Query().Get("saved") == "1" {
		flash.Message = MsgBasicInfoSaved
	}
	view.BasicInfoPage(c.Page(), user, flash).Render(r.Context(), w)
}

// HandleSaveBasicInfo writes the basic-info form back. The username is not
// editable here.
// POST /basic-info
func (h *ProfileHandler) HandleSaveBasicInfo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	c := h.clients.For(r)
	current := h.profiles.Load(r.Context(), c.Session, c.Users)
	update := service.BasicInfoUpdate{
		FirstName:   formValue(r, "firstName"),
		LastName:    formValue(r, "lastName"),
		Email:       formValue(r, "email"),
		Mobile:      formValue(r, "mobile"),
		Gender:      r.FormValue("gender"),
		DateOfBirth: dateOfBirth(r),
		BloodGroup:  r.FormValue("bloodGroup"),
		State:       r.FormValue("state"),
		District:    r.FormValue("district"),
		Pincode:     formValue(r, "pincode"),
	}
	h.profiles.Save(r.Context(), c.Session, c.Users, update.Apply(current))

	http.Redirect(w, r, "/basic-info?saved=1", http.StatusSeeOther)
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func dateOfBirth(r *http.Request) domain.DateOfBirth {
	return domain.DateOfBirth{
		Day:   r.FormValue("dobDay"),
		Month: r.FormValue("dobMonth"),
		Year:  r.FormValue("dobYear"),
	}
}

// imageErrorMessage strips the sentinel prefix from a validation error.
func imageErrorMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	if msg == "" {
		return "Invalid image."
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
