// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message submitted through the public contact form.
// Messages are immutable once created; administrators can only read and
// delete them.
type ContactMessage struct {
	ID        uuid.UUID // The unique identifier for the message.
	Name      string    // Sender display name.
	Email     string    // Sender email address.
	Subject   string    // Optional subject line.
	Message   string    // Message body.
	CreatedAt time.Time // Timestamp of when the message was received.
}
