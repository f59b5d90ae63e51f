// Package gemini provides an implementation of the generation.Gateway interface
// that uses Google's Gemini API through the google.golang.org/genai client.
//
// This package is an infrastructure adapter: it translates the provider-neutral
// call options of the generation package into Gemini request configuration and
// translates Gemini responses and errors back, without exposing SDK types to the
// rest of the application.
//
// Key responsibilities:
//
//   - Browsing calls enable the URL context tool so the model can read the page.
//   - Structured calls request application/json output constrained by a schema
//     converted from generation.Schema.
//   - Safety blocks, URL retrieval failures and empty output are reported with
//     the generation package's sentinel errors.
//   - API errors are reported as *generation.UpstreamError carrying the HTTP and
//     RPC status, so they can be classified without importing the SDK.
//
// The gateway never retries. Fallback between models is the orchestrator's job.
package gemini
