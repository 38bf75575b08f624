package catalog

import (
	"strings"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// ContactReply is the message returned for an accepted submission.
const ContactReply = "Message sent successfully! We'll get back to you soon."

// Contact accepts a contact-form submission. Nothing is sent anywhere: the
// message is logged and the acceptance time returned.
func (c *Catalog) Contact(m schema.ContactMessage) (time.Time, error) {
	for _, field := range []string{m.Name, m.Email, m.Subject, m.Message} {
		if strings.TrimSpace(field) == "" {
			return time.Time{}, common.ErrMissingFields
		}
	}

	c.logger.Info("contact form submission",
		"name", m.Name,
		"email", m.Email,
		"subject", m.Subject,
		"length", len(m.Message),
	)
	return c.now().UTC(), nil
}
