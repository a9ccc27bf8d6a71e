package rest

import (
	"net/http"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

// ToneView describes one tone for clients.
type ToneView struct {
	Slug      string `json:"slug"`
	Label     string `json:"label"`
	MenuLabel string `json:"menuLabel"`
	Color     string `json:"color"`
}

// TonesResponse is the GET /api/tones body.
type TonesResponse struct {
	Default string     `json:"default"`
	Tones   []ToneView `json:"tones"`
}

// Tones handles GET /api/tones. The catalog is static, so the response is
// built once.
func Tones() http.HandlerFunc {
	resp := TonesResponse{Default: domain.DefaultTone.Slug()}
	for _, t := range domain.Tones() {
		resp.Tones = append(resp.Tones, ToneView{
			Slug:      t.Slug(),
			Label:     t.Label(),
			MenuLabel: t.MenuLabel(),
			Color:     t.Color(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
