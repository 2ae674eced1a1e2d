// Package weberr decorates errors with the HTTP response they should
// produce and with structured fields for the request logger. Handlers
// return plain errors; the errors middleware unwraps the decorations.
package weberr

type Opt func(error) error

// Wrap applies each decoration to err in order.
func Wrap(err error, opts ...Opt) error {
	for _, opt := range opts {
		err = opt(err)
	}
	return err
}

// WithResponse attaches the body and status the client should see.
func WithResponse(body any, status int) Opt {
	return func(err error) error {
		return &responseError{error: err, body: body, status: status}
	}
}

// WithFields attaches structured fields for the error log line.
func WithFields(fields map[string]any) Opt {
	return func(err error) error {
		return &fieldsError{error: err, fields: fields}
	}
}
