package fulfilment

import (
	"encoding/json"
	"net/http"

	"github.com/fulfilmenthub/notify-adapter/internal/domain"
	"github.com/fulfilmenthub/notify-adapter/internal/template"
)

// envelope mirrors the webhook body: the fulfilment request sits nested
// under payload.fulfilmentRequest.
type envelope struct {
	Payload struct {
		FulfilmentRequest *fulfilmentRequest `json:"fulfilmentRequest"`
	} `json:"payload"`
}

type fulfilmentRequest struct {
	FormType        string  `json:"form_type"`
	RegionCode      string  `json:"region_code"`
	LanguageCode    string  `json:"language_code"`
	EmailAddress    string  `json:"email_address"`
	DisplayAddress  string  `json:"display_address"`
	TxID            *string `json:"tx_id"`
	QuestionnaireID *string `json:"questionnaire_id"`
}

// Validated is the outcome of a successful validation pass: everything
// the dispatcher needs, and nothing from the raw request.
type Validated struct {
	Data       domain.FulfilmentData
	TemplateID string
	LogContext domain.LogContext
}

// Validator runs the inbound checks. It performs no credential or
// network work, so it is fully unit-testable without an upstream.
type Validator struct {
	resolver *template.Resolver
}

func NewValidator(resolver *template.Resolver) *Validator {
	return &Validator{resolver: resolver}
}

// Validate checks the request in order, short-circuiting on the first
// failure: method, body, envelope, required fields, template
// resolution. The log context is returned alongside the error so
// callers can attach correlation fields to failure logs; it is zero
// until the envelope has been parsed.
func (v *Validator) Validate(r *http.Request) (*Validated, domain.LogContext, error) {
	var logCtx domain.LogContext

	if r.Method != http.MethodPost {
		return nil, logCtx, domain.ErrMethodNotAllowed
	}

	if r.Body == nil {
		return nil, logCtx, domain.ErrMissingBody
	}
	var env envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		return nil, logCtx, domain.ErrMissingBody
	}
	fr := env.Payload.FulfilmentRequest
	if fr == nil {
		return nil, logCtx, domain.ErrMissingBody
	}

	logCtx = domain.LogContext{TxID: fr.TxID, QuestionnaireID: fr.QuestionnaireID}

	// All absent fields are collected so the message names every one of
	// them, in declaration order, regardless of which is checked first.
	var missing []string
	if fr.FormType == "" {
		missing = append(missing, "form_type")
	}
	if fr.RegionCode == "" {
		missing = append(missing, "region_code")
	}
	if fr.LanguageCode == "" {
		missing = append(missing, "language_code")
	}
	if len(missing) > 0 {
		return nil, logCtx, &domain.MissingFieldsError{Fields: missing}
	}

	templateID, ok := v.resolver.Resolve(fr.FormType, fr.RegionCode, fr.LanguageCode)
	if !ok {
		return nil, logCtx, domain.ErrNoTemplate
	}

	return &Validated{
		Data: domain.FulfilmentData{
			EmailAddress:   fr.EmailAddress,
			DisplayAddress: fr.DisplayAddress,
		},
		TemplateID: templateID,
		LogContext: logCtx,
	}, logCtx, nil
}
