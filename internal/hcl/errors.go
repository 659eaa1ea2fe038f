package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ParseError reports a malformed scene file.
type ParseError struct {
	Path  string
	Diags hcl.Diagnostics
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse scene %s: %s", e.Path, e.Diags.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Diags
}

func diagError(rng *hcl.Range, summary, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng,
	}
}
