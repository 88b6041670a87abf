package response

import "time"

type AccountResponse struct {
	Username     string
	Email        string
	RegisteredAt time.Time
	Status       string
}
