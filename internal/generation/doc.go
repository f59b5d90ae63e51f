// Package generation turns a web URL into a validated multiple-choice quiz by
// delegating content understanding to an external language model.
//
// The pipeline is deliberately split in two model calls. The first call uses
// the model's URL browsing capability to summarize the page; the second call
// asks for a schema-constrained quiz built only from that summary. Browsing
// and structured output cannot be combined in one upstream request.
//
// Key components:
//
//   - Gateway: the port to the language model provider (see platform/gemini)
//   - PromptBuilder: renders the context and quiz prompts
//   - QuizSchema: the structured-output schema with the question count baked in
//   - ValidateResponse and RepairIDs: parse, validate and repair model output
//   - Orchestrator: runs the pipeline with sequential fallback across models
//   - Classify: maps any failure to a stable error Kind
package generation
