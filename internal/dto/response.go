package dto

// OKResponse acknowledgement body for commands without a payload
type OKResponse struct {
	OK bool `json:"ok"`
}

// IDResponse created entity id
type IDResponse struct {
	ID int `json:"id"`
}
