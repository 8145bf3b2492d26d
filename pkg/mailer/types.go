package mailer

import "fmt"

// Tags labels a message for the provider. A struct{}{} value marks a
// presence-only tag; any other value is sent as name=value.
type Tags map[string]any

// SimpleTags builds presence-only tags.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Address formats name and email as "Name <email>", or just email when
// name is empty.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a rendered message ready for a Sender.
type Email struct {
	Headers map[string]string
	Tags    Tags
	Subject string
	HTML    string
	Text    string
	From    string // empty means the sender's default
	ReplyTo string
	To      []string
}
