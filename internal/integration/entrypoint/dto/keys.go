// Package dto defines data transfer objects for API requests and responses.
package dto

// KeyResponse represents a single generated key.
type KeyResponse struct {
	Type   string `json:"type"`
	Key    string `json:"key"`
	Length int    `json:"length"`
}

// BatchKeysResponse represents a batch of generated keys.
type BatchKeysResponse struct {
	Type  string   `json:"type"`
	Count int      `json:"count"`
	Keys  []string `json:"keys"`
}
