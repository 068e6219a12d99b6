// link/mail.go
package link

import (
	"html/template"
	"net/url"
	"strings"

	"github.com/dalemusser/syrup/tag"
)

// MailOptions tunes the generated mailto URL. Zero-value fields are omitted.
type MailOptions struct {
	Subject string
	Cc      string
	Bcc     string
	Body    string
}

// MailTo renders a mailto anchor for address. The display name defaults to
// the address itself when empty.
func (h *Helper) MailTo(address, name string, attrs tag.Attrs) template.HTML {
	return h.MailToWith(address, name, MailOptions{}, attrs)
}

// MailToWith is MailTo with subject/cc/bcc/body encoded into the mailto
// query string.
func (h *Helper) MailToWith(address, name string, mo MailOptions, attrs tag.Attrs) template.HTML {
	if name == "" {
		name = address
	}

	href := "mailto:" + address
	if q := mailtoQuery(mo); q != "" {
		href += "?" + q
	}

	a := attrs.Clone().Merge(tag.Attrs{"href": href})
	return tag.ContentTag("a", name, a)
}

// mailtoQuery encodes MailOptions in a stable order. Spaces are encoded as
// %20 rather than "+"; mail clients don't uniformly decode the latter.
func mailtoQuery(mo MailOptions) string {
	var parts []string
	add := func(key, val string) {
		if val != "" {
			parts = append(parts, key+"="+mailtoEscape(val))
		}
	}
	add("cc", mo.Cc)
	add("bcc", mo.Bcc)
	add("subject", mo.Subject)
	add("body", mo.Body)
	return strings.Join(parts, "&")
}

func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
