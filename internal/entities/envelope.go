package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Fivegen-LLC/pfsense-client/internal/errs"
)

var envelopeValidate = validator.New()

// Envelope is the wrapper returned by the appliance around every payload.
type Envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code" validate:"oneof=200 400 401 403 404 500"`
	Return  int             `json:"return"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Validate checks the envelope code against the codes the appliance is allowed to answer with.
func (e Envelope) Validate() (err error) {
	if err = envelopeValidate.Struct(e); err != nil {
		return fmt.Errorf("Validate: code %d: %w: %w", e.Code, errs.ErrInvalidEnvelope, err)
	}

	return nil
}

func (e Envelope) IsError() bool {
	return e.Code != http.StatusOK
}

// Leases decodes envelope data as a list of lease records.
func (e Envelope) Leases() (leases Leases, err error) {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return Leases{}, nil
	}

	// numbers keep the text the appliance sent
	decoder := json.NewDecoder(bytes.NewReader(e.Data))
	decoder.UseNumber()
	if err = decoder.Decode(&leases); err != nil {
		return leases, fmt.Errorf("Leases: %w: %w", errs.ErrInvalidEnvelope, err)
	}

	return leases, nil
}
