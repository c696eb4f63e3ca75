package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
	"oglasnik-service/internal/core/port/usecases_port"
)

type SearchHandler struct {
	searchAnnouncementsUC usecases_port.SearchAnnouncementsUseCase
	searchDeletedUC       usecases_port.SearchDeletedAnnouncementsUseCase
	searchCompaniesUC     usecases_port.SearchCompaniesUseCase
}

func NewSearchHandler(
	searchAnnouncementsUC usecases_port.SearchAnnouncementsUseCase,
	searchDeletedUC usecases_port.SearchDeletedAnnouncementsUseCase,
	searchCompaniesUC usecases_port.SearchCompaniesUseCase,
) *SearchHandler {
	return &SearchHandler{
		searchAnnouncementsUC: searchAnnouncementsUC,
		searchDeletedUC:       searchDeletedUC,
		searchCompaniesUC:     searchCompaniesUC,
	}
}

// parseAnnouncementCriteria binds the optional search parameters.
// Malformed numeric parameters are a client error; absent ones mean no
// constraint.
func parseAnnouncementCriteria(query url.Values) (domain.AnnouncementCriteria, error) {
	startPrice, err := parseOptionalFloat(query, "startPrice")
	if err != nil {
		return domain.AnnouncementCriteria{}, err
	}
	endPrice, err := parseOptionalFloat(query, "endPrice")
	if err != nil {
		return domain.AnnouncementCriteria{}, err
	}
	startArea, err := parseOptionalFloat(query, "startArea")
	if err != nil {
		return domain.AnnouncementCriteria{}, err
	}
	endArea, err := parseOptionalFloat(query, "endArea")
	if err != nil {
		return domain.AnnouncementCriteria{}, err
	}

	return domain.AnnouncementCriteria{
		StartPrice:   startPrice,
		EndPrice:     endPrice,
		StartArea:    startArea,
		EndArea:      endArea,
		AuthorName:   query.Get("authorName"),
		Type:         query.Get("type"),
		PhoneNumber:  query.Get("phoneNumber"),
		Country:      query.Get("country"),
		City:         query.Get("city"),
		CityRegion:   query.Get("cityRegion"),
		Street:       query.Get("street"),
		StreetNumber: query.Get("streetNumber"),
	}, nil
}

// SearchAnnouncements handles GET /api/v1/announcements/search
func (h *SearchHandler) SearchAnnouncements(w http.ResponseWriter, r *http.Request) {
	h.searchAnnouncements(w, r, h.searchAnnouncementsUC.Execute, "SearchAnnouncements")
}

// SearchDeletedAnnouncements handles GET /api/v1/announcements/deleted.
// The route is expected to sit behind an authorization layer; the handler
// itself applies none.
func (h *SearchHandler) SearchDeletedAnnouncements(w http.ResponseWriter, r *http.Request) {
	h.searchAnnouncements(w, r, h.searchDeletedUC.Execute, "SearchDeletedAnnouncements")
}

type announcementSearchFn func(ctx context.Context, criteria domain.AnnouncementCriteria, page domain.PageRequest) (*domain.AnnouncementPage, error)

func (h *SearchHandler) searchAnnouncements(w http.ResponseWriter, r *http.Request, execute announcementSearchFn, handlerName string) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	criteria, err := parseAnnouncementCriteria(query)
	if err != nil {
		logger.Warn("Invalid search parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	page := parsePageRequest(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": handlerName,
		"page":    page.Page,
		"size":    page.Size,
	})
	handlerLogger.Debug("Processing announcement search request", nil)

	result, err := execute(r.Context(), criteria, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search announcements")
		return
	}

	response := make([]AnnouncementResponse, len(result.Items))
	for i, ann := range result.Items {
		response[i] = toAnnouncementResponse(ann)
	}

	handlerLogger.Info("Announcement search finished", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(response),
	})

	RespondWithPage(w, result.TotalCount, result.Page, result.Size, response)
}

// SearchCompanies handles GET /api/v1/companies/search
func (h *SearchHandler) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	criteria := domain.CompanyCriteria{
		Name:        strings.TrimSpace(query.Get("name")),
		Address:     strings.TrimSpace(query.Get("address")),
		PhoneNumber: strings.TrimSpace(query.Get("phoneNumber")),
	}
	page := parsePageRequest(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SearchCompanies",
		"page":    page.Page,
		"size":    page.Size,
	})
	handlerLogger.Debug("Processing company search request", nil)

	result, err := h.searchCompaniesUC.Execute(r.Context(), criteria, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search companies")
		return
	}

	response := make([]CompanyResponse, len(result.Items))
	for i, company := range result.Items {
		response[i] = toCompanyResponse(company)
	}

	handlerLogger.Info("Company search finished", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(response),
	})

	RespondWithPage(w, result.TotalCount, result.Page, result.Size, response)
}
