package api

// User is the profile record returned by the backend. Role is the
// authorization discriminant; the session layer refuses to treat a profile
// without a role as authenticated.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// SignInResponse is the body of POST /auth/signin. The embedded user is
// advisory only: the session layer re-fetches the profile through /auth/me
// so that one code path decides what "authenticated" means.
type SignInResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// MeResponse is the body of GET /auth/me.
type MeResponse struct {
	User *User `json:"user"`
}

// MessageResponse is the body of the sign-up and password-reset endpoints.
// ResetToken is only populated by backends that return the reset token
// inline (development mode); production backends deliver it out of band.
type MessageResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}
