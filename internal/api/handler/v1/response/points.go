package response

type PointsAdjustmentResponse struct {
	Message        string `json:"message"`
	UserID         uint   `json:"user_id"`
	PointsAdjusted int    `json:"points_adjusted"`
	TotalPoints    int    `json:"total_points"`
}
