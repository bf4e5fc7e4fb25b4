package models

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// SurfSessionResponse is returned after creating a session.
type SurfSessionResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TotalScore  float64 `json:"total_score"`
	Zone        *string `json:"zone"`
	CreatedAt   string  `json:"created_at"`
	Message     string  `json:"message"`
}

// SurfSessionList wraps a filtered listing.
type SurfSessionList struct {
	Sessions []SurfSession `json:"sessions"`
	Count    int           `json:"count"`
}

// UserResponse is the public view of a dashboard account.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
