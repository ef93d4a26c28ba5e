package response

// Envelope is the body of every successful response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// List wraps a collection and reports its size.
func List[T any](message string, items []T) Envelope {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return Envelope{Success: true, Message: message, Count: &n, Data: items}
}
