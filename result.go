package linkscan

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Result records the outcome of checking one link. StatusCode is the
// HTTP status of the response when one was received; Error carries the
// transport-level cause when none was. Exactly one of the two is set.
type Result struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Broken reports whether the link counts as broken: no response at
// all, or an HTTP status of 400 and above.
func (r Result) Broken() bool {
	return r.Error != "" || r.StatusCode >= http.StatusBadRequest
}

// StatusLabel renders the status column of the report: the numeric
// code, or "Error" when no response came back.
func (r Result) StatusLabel() string {
	if r.Error != "" {
		return "Error"
	}
	return strconv.Itoa(r.StatusCode)
}

// Report holds one Result per unique link discovered in the scanned
// document, ordered by URL.
type Report struct {
	Results []Result `json:"results"`
}

func NewReport() *Report {
	return &Report{Results: []Result{}}
}

func (rp *Report) add(r Result) {
	rp.Results = append(rp.Results, r)
}

// Broken returns the broken subset of the report, preserving order.
func (rp *Report) Broken() []Result {
	broken := []Result{}
	for _, r := range rp.Results {
		if r.Broken() {
			broken = append(broken, r)
		}
	}
	return broken
}

// WriteBroken writes one "<url>: <status>" line per broken link to w.
func (rp *Report) WriteBroken(w io.Writer) error {
	for _, r := range rp.Broken() {
		_, err := fmt.Fprintf(w, "%s: %s\n", r.URL, r.StatusLabel())
		if err != nil {
			return err
		}
	}
	return nil
}
