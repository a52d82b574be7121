package linkscan

import (
	"fmt"
	"io"
)

// checkLink issues one GET against link and records what came back. A
// transport failure is not an error to the caller: it becomes the
// outcome, and the scan moves on to the next link.
func (c *Checker) checkLink(link string) Result {
	fmt.Fprintf(c.Debug, "[linkscan] checking %s\n", link)
	resp, err := c.doRequest(link)
	if err != nil {
		c.Log.Printf("error checking %s: %v", link, err)
		return Result{URL: link, Error: err.Error()}
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused for the next link.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	fmt.Fprintf(c.Debug, "[linkscan] %s returned %d\n", link, resp.StatusCode)
	return Result{URL: link, StatusCode: resp.StatusCode}
}
