package response

import "campus-reservation/internal/usecase/commands"

type LoginResponse struct {
	StudentID   int64  `json:"student_id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		StudentID:   r.StudentID.Int64(),
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
	}
}
