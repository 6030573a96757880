package request

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"office@church.example"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

type CreateCampaignRequest struct {
	Name        string  `json:"name" binding:"required" example:"Building Fund"`
	Description string  `json:"description,omitempty" example:"New sanctuary roof"`
	GoalAmount  float64 `json:"goal_amount" binding:"required,gt=0" example:"250000"`
}
