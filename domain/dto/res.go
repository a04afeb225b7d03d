package dto

// Res is the uniform response envelope shared with the upstream backend:
// { success: boolean, data?, message? }.
type Res struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Ok wraps data in a successful envelope.
func Ok(data interface{}) Res {
	return Res{Success: true, Data: data}
}

// Fail wraps a user-facing message in a failed envelope.
func Fail(message string) Res {
	return Res{Success: false, Message: message}
}
