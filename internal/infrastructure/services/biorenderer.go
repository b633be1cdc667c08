package services

import (
	profilesvc "github.com/vitrine-app/vitrine/internal/application/profile/services"
	"github.com/vitrine-app/vitrine/internal/shared/services/markdown"
)

type markdownBioRenderer struct {
	md markdown.MarkdownService
}

// NewMarkdownBioRenderer adapts the shared markdown service to the
// renderer the profile use cases expect. Output is sanitized HTML.
func NewMarkdownBioRenderer() profilesvc.BioRenderer {
	return &markdownBioRenderer{md: markdown.NewMarkdownService()}
}

func (r *markdownBioRenderer) Render(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	return r.md.ToHTMLSanitized(source)
}
