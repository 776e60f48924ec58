package types

import "errors"

// CodeBundle is the three-field artifact returned to the caller: body markup,
// stylesheet, and page script for a generated single page.
type CodeBundle struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// Validate checks that all three bundle fields are present and non-empty.
// A bundle that fails validation is never returned as a success response.
func (b *CodeBundle) Validate() error {
	if b.HTML == "" {
		return errors.New(`missing or empty "html" field`)
	}
	if b.CSS == "" {
		return errors.New(`missing or empty "css" field`)
	}
	if b.JS == "" {
		return errors.New(`missing or empty "js" field`)
	}
	return nil
}
