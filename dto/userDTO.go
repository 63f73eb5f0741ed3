package dto

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	PhotoURL string `json:"photoUrl"`
}

type UserResponse struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photoUrl"`
	Provider  string `json:"provider"`
	CreatedAt string `json:"createdAt"`
}
