// Package dto defines data transfer objects for the contact form.
package dto

// ContactReq is the contact form payload. Nothing is persisted; the server
// only acknowledges receipt.
type ContactReq struct {
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"max=20"`
	Subject    string `json:"subject" binding:"required,max=200"`
	Message    string `json:"message" binding:"required"`
	Newsletter bool   `json:"newsletter"`
}
