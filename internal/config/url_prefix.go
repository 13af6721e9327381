package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix is the public base that short codes are appended to.
// It is stored without a trailing slash.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

// Set accepts an absolute http or https URL without query or fragment
func (p *URLPrefix) Set(value string) error {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", value, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL %q must be an absolute http(s) URL", value)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("base URL %q must not carry a query or fragment", value)
	}

	*p = URLPrefix(strings.TrimRight(u.String(), "/"))
	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// ShortURL returns the public address that redirects to code
func (p URLPrefix) ShortURL(code string) (string, error) {
	return url.JoinPath(string(p), "redirect", code)
}
