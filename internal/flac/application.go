package flac

import (
	"fmt"
)

// Application holds an APPLICATION block: a registered 4-byte application
// ID followed by application-defined data.
type Application struct {
	ID   [4]byte
	Data []byte
}

// DecodeApplication decodes an APPLICATION body.
func DecodeApplication(body []byte) (*Application, error) {
	if len(body) < 4 {
		return nil, fmt.Errorf("APPLICATION block too short: %d bytes (need at least 4)", len(body))
	}
	app := &Application{Data: body[4:]}
	copy(app.ID[:], body[:4])
	return app, nil
}

// Encode returns the APPLICATION body.
func (a *Application) Encode() ([]byte, error) {
	body := make([]byte, 0, 4+len(a.Data))
	body = append(body, a.ID[:]...)
	return append(body, a.Data...), nil
}

// Name returns the application ID as text.
func (a *Application) Name() string {
	return string(a.ID[:])
}
