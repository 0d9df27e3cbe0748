// README: Chat session record kept between requests.
package session

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID           string    `json:"session_id"`
	LastQuery    string    `json:"last_query"`
	LastResponse string    `json:"last_response"`
	Language     string    `json:"language"`
	Timestamp    time.Time `json:"timestamp"`
}
