package entities

// Operator is the authenticated staff member performing a request.
type Operator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}
