package rest

import (
	"net/http"

	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
	"oglasnik-service/internal/core/port/usecases_port"
)

type SimilarityHandler struct {
	findSimilarUC usecases_port.FindSimilarRealEstatesUseCase
}

func NewSimilarityHandler(findSimilarUC usecases_port.FindSimilarRealEstatesUseCase) *SimilarityHandler {
	return &SimilarityHandler{findSimilarUC: findSimilarUC}
}

// FindSimilar handles GET /api/v1/real-estates/similar. The announcement
// creation flow calls it before inserting a new real estate; a non-empty
// result means the user should be offered existing rows for reuse.
func (h *SimilarityHandler) FindSimilar(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	area, err := parseRequiredFloat(query, "area")
	if err != nil {
		logger.Warn("Invalid similarity parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	similarityQuery := domain.SimilarityQuery{
		Location: domain.Location{
			Country:      query.Get("country"),
			City:         query.Get("city"),
			CityRegion:   query.Get("cityRegion"),
			Street:       query.Get("street"),
			StreetNumber: query.Get("streetNumber"),
		},
		Area: area,
	}
	page := parsePageRequest(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "FindSimilar",
		"area":    area,
	})
	handlerLogger.Debug("Processing similarity request", nil)

	result, err := h.findSimilarUC.Execute(r.Context(), similarityQuery, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to find similar real estates")
		return
	}

	response := make([]RealEstateResponse, len(result.Items))
	for i, re := range result.Items {
		response[i] = toRealEstateResponse(re)
	}

	handlerLogger.Info("Similarity search finished", port.Fields{
		"candidates_found": result.TotalCount,
	})

	RespondWithPage(w, result.TotalCount, result.Page, result.Size, response)
}
