package request

type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required,student_id"`
}
