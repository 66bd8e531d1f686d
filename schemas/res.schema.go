// Package schemas contains the response and data transfer shapes
package schemas

// Res is the default response payload
type Res struct {
	Status string `json:"status"`
}
