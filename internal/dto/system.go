package dto

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// InfoResponse identifies the API at its root path.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
