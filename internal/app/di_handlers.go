package app

import (
	"fmt"

	"github.com/jo4ovms/psychology-project/internal/http"
)

// handlers assembles every resource handler mounted by the API server.
func (c *Container) handlers() (http.Handlers, error) {
	var handlers http.Handlers
	var err error

	if handlers.User, err = c.UserHandler(); err != nil {
		return handlers, fmt.Errorf("failed to get user handler: %w", err)
	}
	if handlers.Client, err = c.ClientHandler(); err != nil {
		return handlers, fmt.Errorf("failed to get client handler: %w", err)
	}
	if handlers.Address, err = c.AddressHandler(); err != nil {
		return handlers, fmt.Errorf("failed to get address handler: %w", err)
	}
	if handlers.Appointment, err = c.AppointmentHandler(); err != nil {
		return handlers, fmt.Errorf("failed to get appointment handler: %w", err)
	}
	if handlers.Consultation, err = c.ConsultationHandler(); err != nil {
		return handlers, fmt.Errorf("failed to get consultation handler: %w", err)
	}

	return handlers, nil
}
