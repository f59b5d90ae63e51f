// Package domain contains the core quiz entities and the input rules that
// every layer of the application shares. It is independent of the language
// model provider and of the HTTP delivery mechanism, so the request boundary
// and the generation pipeline can apply identical validation.
package domain
