// Package services holds the outbound ports of the profile context.
package services

// BioRenderer turns member-authored markdown into sanitized HTML. The
// aggregate stores both forms; rendering happens once, on write.
type BioRenderer interface {
	Render(markdown string) (string, error)
}

// PlainRenderer passes text through unrendered. Used in tests.
type PlainRenderer struct{}

func (PlainRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}
