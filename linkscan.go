package linkscan

import (
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const Version = "0.1.0"

// DefaultTimeout bounds every request the scanner makes, the root
// document fetch and each link check alike.
const DefaultTimeout = 10 * time.Second

// DefaultBaseURL is the placeholder origin used to resolve relative
// links when scanning a local file, which has no origin of its own.
const DefaultBaseURL = "http://localhost"

type Checker struct {
	BaseURL    string
	Debug      io.Writer
	HTTPClient *http.Client
	Insecure   bool
	Log        *log.Logger
	Timeout    time.Duration
}

type Option func(*Checker)

// Scan runs the whole pipeline against target, which is either an
// absolute http(s) URL or a path to a local HTML file: fetch or read
// the document, extract every anchor target, then check each unique
// link once, in sorted order.
//
// The only error Scan returns is an invalid target, a string that
// looks like an absolute URL but does not parse into scheme plus host.
// Every failure past that point degrades instead of aborting: a root
// fetch or file read failure yields an empty report, and a link that
// cannot be checked is recorded as broken with its cause.
func Scan(target string, opts ...Option) (*Report, error) {
	c := &Checker{
		BaseURL: DefaultBaseURL,
		Debug:   io.Discard,
		Log:     log.New(os.Stderr, "", log.LstdFlags),
		Timeout: DefaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout: c.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: c.Insecure},
			},
		}
	}

	var baseURL, content string
	if IsWebTarget(target) {
		if !IsValidURL(target) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
		}
		body, err := c.fetchPage(target)
		if err != nil {
			c.Log.Printf("error accessing %s: %v", target, err)
			return NewReport(), nil
		}
		baseURL, content = target, body
	} else {
		body, err := readFile(target)
		if err != nil {
			c.Log.Printf("error reading file %s: %v", target, err)
			return NewReport(), nil
		}
		baseURL, content = c.BaseURL, body
	}

	links := ExtractLinks(baseURL, content)
	fmt.Fprintf(c.Debug, "[linkscan] found %d unique links in %s\n", len(links), target)
	report := NewReport()
	for _, link := range links {
		report.add(c.checkLink(link))
	}
	return report, nil
}

func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.Timeout = d
	}
}

// WithInsecure disables TLS certificate verification on every request.
func WithInsecure(insecure bool) Option {
	return func(c *Checker) {
		c.Insecure = insecure
	}
}

// WithHTTPClient replaces the client built from the timeout and TLS
// settings. Mostly a test hook.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		c.HTTPClient = client
	}
}

// WithBaseURL sets the origin used to resolve relative links in file
// mode. Remote scans always resolve against the target itself.
func WithBaseURL(base string) Option {
	return func(c *Checker) {
		c.BaseURL = base
	}
}

func WithDebug(w io.Writer) Option {
	return func(c *Checker) {
		c.Debug = w
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Checker) {
		c.Log = l
	}
}
