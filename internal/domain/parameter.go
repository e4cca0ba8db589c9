package domain

import "github.com/google/uuid"

// Parameter is a key/value entry of the runtime parameter store
type Parameter struct {
	ID    uuid.UUID
	Key   string
	Value string
}
