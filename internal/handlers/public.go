package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Home shows aggregate counts: how many athletes, news items and
// achievements the site currently has.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	athletes, err := h.store.CountAthletes()
	if err != nil {
		h.dbError(w, err)
		return
	}
	news, err := h.store.CountNews()
	if err != nil {
		h.dbError(w, err)
		return
	}
	achievements, err := h.store.CountAchievements()
	if err != nil {
		h.dbError(w, err)
		return
	}

	h.render(w, r, "index.html", map[string]any{
		"Title":         "Beranda",
		"TotalAtlet":    athletes,
		"TotalBerita":   news,
		"TotalPrestasi": achievements,
	})
}

func (h *Handlers) Athletes(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListAthletes()
	if err != nil {
		h.dbError(w, err)
		return
	}
	h.render(w, r, "atlet.html", map[string]any{
		"Title": "Atlet",
		"Atlet": list,
	})
}

func (h *Handlers) News(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListNews()
	if err != nil {
		h.dbError(w, err)
		return
	}
	h.render(w, r, "berita.html", map[string]any{
		"Title":  "Berita",
		"Berita": list,
	})
}

func (h *Handlers) Schedule(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListSchedule()
	if err != nil {
		h.dbError(w, err)
		return
	}
	h.render(w, r, "jadwal.html", map[string]any{
		"Title":  "Jadwal",
		"Jadwal": list,
	})
}

func (h *Handlers) Achievements(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListAchievements()
	if err != nil {
		h.dbError(w, err)
		return
	}
	h.render(w, r, "prestasi.html", map[string]any{
		"Title":    "Prestasi",
		"Prestasi": list,
	})
}

// Category renders the category page for the label in the URL. The label is
// displayed only; it is not applied to the athlete query. That mirrors the
// current site and is tracked as a known quirk in DESIGN.md.
func (h *Handlers) Category(w http.ResponseWriter, r *http.Request) {
	jenis := chi.URLParam(r, "jenis")
	h.render(w, r, "kategori.html", map[string]any{
		"Title": "Kategori " + jenis,
		"Jenis": jenis,
	})
}

func (h *Handlers) dbError(w http.ResponseWriter, err error) {
	log.Printf("handlers: %v", err)
	http.Error(w, "database error", http.StatusInternalServerError)
}
