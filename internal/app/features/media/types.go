// internal/app/features/media/types.go
package media

import (
	"html/template"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/paging"
	"github.com/dalemusser/folio/internal/domain/models"
)

// mediaResponse is a media document after the read hook, plus resolved URLs
// for the original and every size.
type mediaResponse struct {
	models.Media
	ResolvedURL   string             `json:"resolved_url"`
	ResolvedSizes map[string]string  `json:"resolved_sizes,omitempty"`
	Warnings      []mediaurl.Warning `json:"warnings,omitempty"`
}

// documentResponse is a document with its resolved file URL. ViewerURL is
// what a PDF viewer should load: the external embed when one is set,
// otherwise the file itself.
type documentResponse struct {
	models.Document
	ResolvedURL     string             `json:"resolved_url"`
	ViewerURL       string             `json:"viewer_url"`
	DescriptionHTML template.HTML      `json:"description_html,omitempty"`
	Warnings        []mediaurl.Warning `json:"warnings,omitempty"`
}

type documentListResponse struct {
	Category  string             `json:"category,omitempty"`
	Documents []documentResponse `json:"documents"`
	Paging    paging.Result      `json:"paging"`
}
