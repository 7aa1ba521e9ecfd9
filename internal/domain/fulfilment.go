package domain

import "go.uber.org/zap"

// FulfilmentData holds the fields extracted from a validated fulfilment
// request that the dispatcher needs to build the outbound email request.
type FulfilmentData struct {
	EmailAddress   string
	DisplayAddress string
}

// LogContext carries the correlation fields of a fulfilment request.
// Both fields are optional on the wire; they are threaded through
// validation and dispatch for observability only and never affect
// control flow.
type LogContext struct {
	TxID            *string
	QuestionnaireID *string
}

// Fields renders the log context as zap fields. Absent values are
// logged as null so every line carries both keys.
func (lc LogContext) Fields() []zap.Field {
	return []zap.Field{
		zap.Stringp("tx_id", lc.TxID),
		zap.Stringp("questionnaire_id", lc.QuestionnaireID),
	}
}

// Result is the normalized outcome of handling one fulfilment request.
// Every terminal branch of the pipeline, success or failure, collapses
// to one of these pairs.
type Result struct {
	Message    string
	StatusCode int
}
