package domain

// Patient is the authenticated identity supplied by the session collaborator.
// This service reads it from token claims and never writes it.
type Patient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
