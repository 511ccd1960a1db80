package handler

import (
	"log/slog"
	"net/http"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/service"
)

const maxCaseStudies = 50

// CaseStudyHandler serves the public case-study JSON API.
type CaseStudyHandler struct {
	caseStudyService service.CaseStudyService
}

func NewCaseStudyHandler(caseStudyService service.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{caseStudyService: caseStudyService}
}

type caseStudiesResponse struct {
	CaseStudies []*model.CaseStudy `json:"case_studies"`
}

// List handles GET /api/case-studies. ?featured=true restricts the result to
// featured entries; ?limit caps it.
func (h *CaseStudyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := listLimit(r, maxCaseStudies)
	q := service.CaseStudiesQuery(limit)
	if r.URL.Query().Get("featured") == "true" {
		q = service.FeaturedCaseStudiesQuery(limit)
	}

	studies, err := h.caseStudyService.List(r.Context(), q)
	if err != nil {
		slog.Error("case study list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if studies == nil {
		studies = []*model.CaseStudy{}
	}
	writeJSON(w, http.StatusOK, caseStudiesResponse{CaseStudies: studies})
}
