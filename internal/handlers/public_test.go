package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHomeShowsCounts(t *testing.T) {
	h, mock, _ := newTestHandlers(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM athletes`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM news`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM achievements`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	w := httptest.NewRecorder()
	h.Home(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4|2|9", w.Body.String())
}

func TestAthletesListing(t *testing.T) {
	h, mock, _ := newTestHandlers(t)

	rows := sqlmock.NewRows([]string{"id", "name", "category", "photo"}).
		AddRow(1, "Budi", "Renang", "budi.jpg")
	mock.ExpectQuery(`SELECT id, name, category, photo FROM athletes`).
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	h.Athletes(w, httptest.NewRequest("GET", "/atlet", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Budi:Renang:budi.jpg;", w.Body.String())
}

func TestNewsListingNewestFirst(t *testing.T) {
	h, mock, _ := newTestHandlers(t)

	rows := sqlmock.NewRows([]string{"id", "title", "body", "date"}).
		AddRow(3, "C", "c", "d").
		AddRow(2, "B", "b", "d").
		AddRow(1, "A", "a", "d")
	mock.ExpectQuery(`SELECT id, title, body, date FROM news ORDER BY id DESC`).
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	h.News(w, httptest.NewRequest("GET", "/berita", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "C;B;A;", w.Body.String())
}

// The category page renders the label from the URL but runs no query: the
// filter is intentionally not applied (see DESIGN.md).
func TestCategoryShowsLabelWithoutFiltering(t *testing.T) {
	h, mock, _ := newTestHandlers(t)

	r := chi.NewRouter()
	r.Get("/kategori/{jenis}", h.Category)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/kategori/renang", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "kategori:renang", w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet(), "no query may run for the category page")
}

func TestDBErrorReturns500(t *testing.T) {
	h, mock, _ := newTestHandlers(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM athletes`).
		WillReturnError(assert.AnError)

	w := httptest.NewRecorder()
	h.Home(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
