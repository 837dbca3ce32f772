package docs

import (
	"fmt"
	"strings"
)

// DefaultReferenceURL is the base of the online reference pages.
const DefaultReferenceURL = "http://p5js.org/reference/#/"

// Reference builds reference links and help text for member records.
type Reference struct {
	BaseURL string
}

// URL returns the reference page for item.
func (r Reference) URL(item ClassItem) string {
	base := r.BaseURL
	if base == "" {
		base = DefaultReferenceURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + item.Class + "/" + item.Name
}

// Help formats the human-readable help string for item.
func (r Reference) Help(item ClassItem) string {
	return fmt.Sprintf("%s()\n\n%s\n\nFor more information, see: %s",
		item.Name, item.Description, r.URL(item))
}
