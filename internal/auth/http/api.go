package http

// apiResponse is the generic success/failure envelope used by registration
// and by every failure response.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse mirrors the auth response contract consumed by clients.
type loginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"` // always "Bearer"
	Message  string `json:"message"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
