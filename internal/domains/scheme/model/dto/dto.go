package dto

import (
	"agrirent/internal/domains/scheme/model"
	"agrirent/shared/constant"
	"net/http"
	"net/url"
)

type ListRequest struct {
	Category string `json:"category" validate:"omitempty,max=64"`
}

func (r *ListRequest) FromRequest(request *http.Request) {
	r.Category = request.URL.Query().Get(constant.RequestParamCategory)
}

func (r ListRequest) Query() url.Values {
	query := url.Values{}
	if r.Category != constant.Empty {
		query.Set(constant.RequestParamCategory, r.Category)
	}

	return query
}

type SchemeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Benefits    string `json:"benefits,omitempty"`
	Eligibility string `json:"eligibility,omitempty"`
	ApplyLink   string `json:"applyLink,omitempty"`
}

func (r *SchemeResponse) FromModel(m model.Scheme) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.Category = m.Category
	r.Benefits = m.Benefits
	r.Eligibility = m.Eligibility
	r.ApplyLink = m.ApplyLink
}

type GetSchemesResponse struct {
	Schemes []SchemeResponse `json:"schemes"`
	Total   int              `json:"total"`
}

func (r *GetSchemesResponse) FromModels(models []model.Scheme) {
	r.Schemes = make([]SchemeResponse, 0, len(models))

	for _, m := range models {
		var scheme SchemeResponse
		scheme.FromModel(m)
		r.Schemes = append(r.Schemes, scheme)
	}

	r.Total = len(r.Schemes)
}
