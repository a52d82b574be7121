package linkscan

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// ErrInvalidTarget marks a target that looks like an absolute URL but
// fails structural validation.
var ErrInvalidTarget = errors.New("invalid URL")

// IsWebTarget reports whether target should be fetched over HTTP
// rather than read from disk.
func IsWebTarget(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// IsValidURL reports whether raw parses into a URL with both a scheme
// and a host.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// fetchPage retrieves the root document. A status of 400 and above is
// a fetch failure, same as a transport error: there is no page to
// extract links from.
func (c *Checker) fetchPage(target string) (string, error) {
	resp, err := c.doRequest(target)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%s returned status %d", target, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func readFile(path string) (string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Checker) doRequest(link string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("user-agent", "linkscan "+Version)
	req.Header.Set("accept", "*/*")
	return c.HTTPClient.Do(req)
}
