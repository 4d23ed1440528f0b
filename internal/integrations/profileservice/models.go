package profileservice

// Profile модель аккаунта из ProfileService
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // "user" | "master" | "admin"
}

// IsMaster возвращает true, если аккаунт имеет роль мастера
func (p *Profile) IsMaster() bool {
	return p.Role == "master"
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
