package dto

// ── Auth module DTOs ──

// RegisterRequest: new account payload.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=80"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=120"`
	Email     string `json:"email"      binding:"required,email"`
	Password  string `json:"password"   binding:"required,min=8,max=72"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	CourseID  int64  `json:"course_id"  binding:"required,gt=0"`
}

// LoginRequest: credentials payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenPair: issued tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse: successful login payload.
type LoginResponse struct {
	User   *UserResponse `json:"user"`
	Tokens TokenPair     `json:"tokens"`
}
