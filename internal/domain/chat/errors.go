package chat

import "errors"

// Sentinel errors for the chat pipeline. The HTTP layer maps each one to a
// response class; anything else is an unhandled failure (500).
var (
	// ErrInvalidInput — the new message is missing or blank. Client error.
	ErrInvalidInput = errors.New("mensaje inválido")

	// ErrMissingCredential — no bearer credential on the request. Client error.
	ErrMissingCredential = errors.New("credencial requerida")

	// ErrNoDocuments — the document service is reachable but the caller has no
	// indexed documents. Not retryable; the fix is uploading documents.
	ErrNoDocuments = errors.New("no hay documentos indexados todavía")

	// ErrContextUnavailable — the document service could not produce the
	// context (network failure, timeout, bad status, malformed payload).
	// Retryable by the caller.
	ErrContextUnavailable = errors.New("servicio de documentos no disponible")

	// ErrCompletionFailed — the completion provider failed. Surfaced as a
	// generic server error; not retried here.
	ErrCompletionFailed = errors.New("error al generar la respuesta")
)
