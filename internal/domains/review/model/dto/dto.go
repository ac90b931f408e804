package dto

import "agrirent/internal/domains/review/model"

type CreateReviewRequest struct {
	EquipmentID string `json:"equipmentId" validate:"required"`
	Rating      int    `json:"rating"      validate:"required,gte=1,lte=5"`
	Comment     string `json:"comment"     validate:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipmentId,omitempty"`
	FarmerName  string `json:"farmerName,omitempty"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID
	r.Rating = m.Rating
	r.Comment = m.Comment
	r.CreatedAt = m.CreatedAt

	if m.Equipment != nil {
		r.EquipmentID = m.Equipment.ID
	}

	if m.Farmer != nil {
		r.FarmerName = m.Farmer.FullName
	}
}

type GetReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	Total         int              `json:"total"`
	AverageRating float64          `json:"averageRating"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review) {
	r.Reviews = make([]ReviewResponse, 0, len(models))

	sum := 0
	for _, m := range models {
		var review ReviewResponse
		review.FromModel(m)
		r.Reviews = append(r.Reviews, review)

		sum += m.Rating
	}

	r.Total = len(r.Reviews)
	if r.Total > 0 {
		r.AverageRating = float64(sum) / float64(r.Total)
	}
}
