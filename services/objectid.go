package services

import (
	"math/rand"
)

const (
	objectIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	objectIDLength   = 11
)

// randomObjectID produces one 11-character candidate from the
// alphanumeric alphabet. Collision checking is the caller's job.
func randomObjectID() string {
	id := make([]byte, objectIDLength)
	for i := range id {
		id[i] = objectIDAlphabet[rand.Intn(len(objectIDAlphabet))]
	}
	return string(id)
}
