package checkchain

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidEmail checks that a string property is a valid email address using
// RFC 5322 plus the extra restrictions typical for web signup forms.
func ValidEmail[S any](property string, get func(S) string) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "must be a valid email address",
		Eval: func(subject S) bool {
			return isEmail(get(subject))
		},
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels.
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// ValidURL checks that a string property is an absolute URL with a scheme
// and a host.
func ValidURL[S any](property string, get func(S) string) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "must be a valid URL",
		Eval: func(subject S) bool {
			value := get(subject)
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
	}
}

// ValidAlphanumeric checks that a string property contains only ASCII
// letters and digits.
func ValidAlphanumeric[S any](property string, get func(S) string) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "must contain only letters and numbers",
		Eval: func(subject S) bool {
			value := get(subject)
			return value != "" && alphanumericRegex.MatchString(value)
		},
	}
}

// ValidLanguageTag checks that a string property is a well-formed BCP 47
// language tag such as "en", "en-US" or "zh-Hant".
func ValidLanguageTag[S any](property string, get func(S) string) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "must be a valid language tag",
		Eval: func(subject S) bool {
			value := get(subject)
			if strings.TrimSpace(value) == "" {
				return false
			}

			_, err := language.Parse(value)
			return err == nil
		},
	}
}
