package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sportcms/internal/store"
	"sportcms/internal/upload"
)

// A submission is one parsed admin form post. The "tipe" form field picks
// the concrete type; each type inserts exactly one row.
type submission interface {
	save(st *store.Store) error
}

type athleteSubmission struct {
	name     string
	category string
	photo    string // sanitized filename, already written to disk
}

func (s athleteSubmission) save(st *store.Store) error {
	return st.InsertAthlete(s.name, s.category, s.photo)
}

type newsSubmission struct {
	title string
	body  string
	date  string
}

func (s newsSubmission) save(st *store.Store) error {
	return st.InsertNews(s.title, s.body, s.date)
}

type scheduleSubmission struct {
	activity string
	date     string
	location string
}

func (s scheduleSubmission) save(st *store.Store) error {
	return st.InsertSchedule(s.activity, s.date, s.location)
}

type achievementSubmission struct {
	athleteName string
	event       string
	result      string
	year        string
}

func (s achievementSubmission) save(st *store.Store) error {
	return st.InsertAchievement(s.athleteName, s.event, s.result, s.year)
}

// AdminPage renders the panel with the full athlete listing.
func (h *Handlers) AdminPage(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r)
}

// AdminSubmit handles the multiplexed create form and then shows the panel
// again, like a plain GET.
func (h *Handlers) AdminSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxPhotoSize)

	sub, err := h.parseSubmission(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := sub.save(h.store); err != nil {
		h.dbError(w, err)
		return
	}
	h.renderAdmin(w, r)
}

func (h *Handlers) parseSubmission(r *http.Request) (submission, error) {
	switch tipe := r.FormValue("tipe"); tipe {
	case "atlet":
		return h.parseAthlete(r)
	case "berita":
		return newsSubmission{
			title: r.FormValue("judul"),
			body:  r.FormValue("isi"),
			date:  r.FormValue("tanggal"),
		}, nil
	case "jadwal":
		return scheduleSubmission{
			activity: r.FormValue("kegiatan"),
			date:     r.FormValue("tanggal"),
			location: r.FormValue("lokasi"),
		}, nil
	case "prestasi":
		return achievementSubmission{
			athleteName: r.FormValue("nama"),
			event:       r.FormValue("event"),
			result:      r.FormValue("juara"),
			year:        r.FormValue("tahun"),
		}, nil
	default:
		return nil, fmt.Errorf("unknown submission type %q", tipe)
	}
}

// parseAthlete also stores the photo: the file is written under its
// sanitized name before the row is inserted.
func (h *Handlers) parseAthlete(r *http.Request) (submission, error) {
	file, header, err := r.FormFile("foto")
	if err != nil {
		return nil, fmt.Errorf("missing photo upload")
	}
	defer file.Close()

	name, err := upload.SavePhoto(h.cfg.UploadDir, file, header)
	if err != nil {
		return nil, err
	}

	return athleteSubmission{
		name:     r.FormValue("nama"),
		category: r.FormValue("kategori"),
		photo:    name,
	}, nil
}

// DeleteAthlete removes the row and bounces back to the panel. Deleting an
// unknown id is a silent no-op; there is no cascade, achievement rows that
// mention the athlete by name stay as they are.
func (h *Handlers) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.store.DeleteAthlete(id); err != nil {
		h.dbError(w, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h *Handlers) renderAdmin(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListAthletes()
	if err != nil {
		h.dbError(w, err)
		return
	}
	h.render(w, r, "admin.html", map[string]any{
		"Title": "Panel Admin",
		"Atlet": list,
	})
}
