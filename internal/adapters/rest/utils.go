package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"oglasnik-service/internal/core/domain"
)

// WriteJSONError sends a JSON body with an "error" field and the given
// status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON marshals the payload and writes it with the given
// status.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithPage writes a JSON array body and carries the pagination
// metadata in response headers, which keeps the body a plain list.
func RespondWithPage(w http.ResponseWriter, totalCount, page, size int, payload interface{}) {
	w.Header().Set("X-Total-Count", strconv.Itoa(totalCount))
	w.Header().Set("X-Page", strconv.Itoa(page))
	w.Header().Set("X-Page-Size", strconv.Itoa(size))
	RespondWithJSON(w, http.StatusOK, payload)
}

// parseOptionalFloat reads an optional numeric query parameter. An absent
// or empty parameter is no constraint; a malformed one is a client error
// and must never reach the search core.
func parseOptionalFloat(query url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %q is not a number", key)
	}
	return &value, nil
}

// parseRequiredFloat is parseOptionalFloat for parameters that must be
// present.
func parseRequiredFloat(query url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return 0, fmt.Errorf("parameter %q is required", key)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number", key)
	}
	return value, nil
}

// parsePageRequest reads page/size/sort/order. Out-of-range paging values
// are clamped rather than rejected; an unknown sort field is ignored by
// the storage layer's whitelist.
func parsePageRequest(query url.Values) domain.PageRequest {
	page, _ := strconv.Atoi(query.Get("page"))
	size, _ := strconv.Atoi(query.Get("size"))
	return domain.PageRequest{
		Page:           page,
		Size:           size,
		SortField:      strings.TrimSpace(query.Get("sort")),
		SortDescending: strings.EqualFold(query.Get("order"), "desc"),
	}.Clamp()
}
