package implementation

import "strings"

const (
	// DefaultPhotoLink is substituted whenever a record is written with an
	// empty photo link; the column is never stored blank.
	DefaultPhotoLink = "https://placehold.co/100x100/EEE/31343C?text=No+Image"

	phoneScheme    = "tel:"
	whatsappPrefix = "https://wa.me/"
)

// normalizePhone prefixes the tel: scheme unless the value already carries it.
func normalizePhone(phone string) string {
	if phone == "" || strings.HasPrefix(phone, phoneScheme) {
		return phone
	}
	return phoneScheme + phone
}

// normalizeWhatsapp turns a bare number into a wa.me link.
func normalizeWhatsapp(number string) string {
	if number == "" || strings.HasPrefix(number, whatsappPrefix) {
		return number
	}
	return whatsappPrefix + number
}

// normalizePhotoLink substitutes the placeholder for blank links.
func normalizePhotoLink(link string) string {
	if strings.TrimSpace(link) == "" {
		return DefaultPhotoLink
	}
	return link
}
