package extract

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension other than .pdf or .docx.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrAccessDenied indicates an encrypted or password-protected document.
	ErrAccessDenied = errors.New("document is password-protected")

	// ErrBadDocument indicates a corrupt or unparseable document structure.
	ErrBadDocument = errors.New("corrupt document")

	// ErrNoText indicates extraction produced no text (e.g. an image-only PDF).
	ErrNoText = errors.New("no extractable text")
)
