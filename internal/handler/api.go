package handler

import (
	"net/http"
)

// apiCollections перечисляет коллекции, доступные в корне API
var apiCollections = []string{"users", "teams", "activities", "leaderboard", "workouts"}

// APIRoot обрабатывает GET /api/: ссылки на все коллекции
func APIRoot(w http.ResponseWriter, r *http.Request) {
	base := baseURL(r) + "/api/"
	links := make(map[string]string, len(apiCollections))
	for _, name := range apiCollections {
		links[name] = base + name + "/"
	}
	RespondWithJSON(w, r, http.StatusOK, links)
}

// Health обрабатывает GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// baseURL восстанавливает внешний адрес сервиса с учетом прокси
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = fwd
	}
	return scheme + "://" + host
}
