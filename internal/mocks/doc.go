// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, tests reuse the
// function-field mocks and quiz fixtures in this package so that gateway
// behavior stays consistent across the generation, API and server tests.
//
// Usage:
//
//	gateway := &mocks.MockGateway{
//	    GenerateFn: func(ctx context.Context, model, prompt string, opts generation.CallOptions) (string, error) {
//	        if opts.Browsing {
//	            return mocks.SampleSummary, nil
//	        }
//	        return mocks.SampleQuizJSON(5), nil
//	    },
//	}
//
// Each mock records its calls so tests can assert on call order and count.
package mocks
