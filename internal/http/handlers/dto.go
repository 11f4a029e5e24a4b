package handlers

// ErrorResponse is the envelope every failure is serialized into.
// Description is either a plain message or a []FieldError.
type ErrorResponse struct {
	Status      string `json:"status"`
	Description any    `json:"description"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// CreateUserResponse echoes the stored bcrypt hash in Password. Existing
// clients depend on the field being present.
type CreateUserResponse struct {
	Id           int    `json:"id"`
	CreationTime int64  `json:"creation_time"`
	Password     string `json:"password"`
}

type UserResponse struct {
	Id           int    `json:"id"`
	Username     string `json:"username"`
	CreationTime string `json:"creation_time"`
}

type CreateBulletinRequest struct {
	Header      string `json:"header" validate:"required"`
	Description string `json:"description" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type CreateBulletinResponse struct {
	Id           int    `json:"id"`
	Header       string `json:"header"`
	Description  string `json:"description"`
	CreationTime int64  `json:"creation_time"`
	Owner        string `json:"owner"`
}

type BulletinResponse struct {
	Id           int    `json:"id"`
	Header       string `json:"header"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
	Owner        string `json:"owner"`
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string `json:"token"`
}
