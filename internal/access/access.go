// Package access derives the endpoint URLs to display once setup finishes.
package access

import (
	"fmt"

	"n8nctl/internal/catalog"
)

// Endpoint is one user-facing access point of the deployed stack.
type Endpoint struct {
	Label string
	URL   string
}

// Summarize returns the access endpoints for a selection, in display order.
// It is a pure function of its inputs: with traefik selected the primary
// entry point is the domain over HTTPS (plus a qdrant subdomain when qdrant
// is also selected); without traefik n8n is only reachable locally.
func Summarize(sel catalog.Selection, domain string, n8nPort int) []Endpoint {
	if sel.Contains("traefik") {
		endpoints := []Endpoint{
			{Label: "n8n", URL: fmt.Sprintf("https://%s", domain)},
		}
		if sel.Contains("qdrant") {
			endpoints = append(endpoints, Endpoint{
				Label: "Qdrant",
				URL:   fmt.Sprintf("https://qdrant.%s", domain),
			})
		}
		return endpoints
	}

	return []Endpoint{
		{Label: "n8n", URL: fmt.Sprintf("http://localhost:%d", n8nPort)},
	}
}
