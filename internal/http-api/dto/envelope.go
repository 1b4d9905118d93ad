package dto

// Envelope is the shared response shape of every endpoint:
// status is "success", "fail" (client error) or "error" (server error).
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Envelope {
	return Envelope{Status: "success", Message: message, Data: data}
}

func Fail(message string) Envelope {
	return Envelope{Status: "fail", Message: message}
}

func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}
