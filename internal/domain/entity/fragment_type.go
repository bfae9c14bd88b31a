// Package entity contains the core business objects of the project.
package entity

import (
	"mime"
	"strings"
)

// FragmentType is the MIME type describing how a fragment's content is interpreted.
// It may carry media type parameters, e.g. "text/plain; charset=utf-8".
type FragmentType string

const (
	// FragmentTypeText indicates plain text content.
	FragmentTypeText FragmentType = "text/plain"
	// FragmentTypeMarkdown indicates markdown content.
	FragmentTypeMarkdown FragmentType = "text/markdown"
	// FragmentTypeJSON indicates a JSON document.
	FragmentTypeJSON FragmentType = "application/json"
)

// SupportedFragmentTypes lists the accepted media types in display order.
var SupportedFragmentTypes = []FragmentType{FragmentTypeText, FragmentTypeMarkdown, FragmentTypeJSON}

// String returns the string representation of the FragmentType.
func (t FragmentType) String() string {
	return string(t)
}

// MediaType returns the lower-cased type without parameters, or "" when unparsable.
func (t FragmentType) MediaType() string {
	mediaType, _, err := mime.ParseMediaType(string(t))
	if err != nil {
		return ""
	}

	return strings.ToLower(mediaType)
}

// IsValid checks if the FragmentType's media type is one of the supported values.
func (t FragmentType) IsValid() bool {
	switch FragmentType(t.MediaType()) {
	case FragmentTypeText, FragmentTypeMarkdown, FragmentTypeJSON:
		return true
	default:
		return false
	}
}

// IsText reports whether the content can be shown as text without conversion.
func (t FragmentType) IsText() bool {
	mediaType := t.MediaType()

	return strings.HasPrefix(mediaType, "text/") || mediaType == string(FragmentTypeJSON)
}
