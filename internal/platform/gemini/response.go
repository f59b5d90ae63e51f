package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/quizgen-api/internal/generation"
	"google.golang.org/genai"
)

// URL retrieval statuses reported in URL context metadata.
const (
	urlRetrievalSuccess = "URL_RETRIEVAL_STATUS_SUCCESS"
	urlRetrievalUnsafe  = "URL_RETRIEVAL_STATUS_UNSAFE"
)

// blockedFinishReasons end a candidate because of content policy.
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
}

// responseText extracts the answer text from resp, or reports why there is
// none.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrEmptyResponse)
	}

	if fb := resp.PromptFeedback; fb != nil && isBlockReason(string(fb.BlockReason)) {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, fb.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if blockedFinishReasons[candidate.FinishReason] {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}

	text := candidateText(candidate)

	if err := checkURLRetrieval(candidate, text); err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrEmptyResponse, candidate.FinishReason)
	}

	return text, nil
}

// candidateText joins the non-thought text parts of a candidate.
func candidateText(candidate *genai.Candidate) string {
	if candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

// checkURLRetrieval rejects unsafe URLs outright, and reports other failed
// retrievals when the model produced nothing from them.
func checkURLRetrieval(candidate *genai.Candidate, text string) error {
	if candidate.URLContextMetadata == nil {
		return nil
	}

	var failed []string
	for _, meta := range candidate.URLContextMetadata.URLMetadata {
		if meta == nil {
			continue
		}
		status := string(meta.URLRetrievalStatus)
		switch status {
		case urlRetrievalUnsafe:
			return fmt.Errorf("%w: %s", generation.ErrUnsafeURL, status)
		case urlRetrievalSuccess, "":
		default:
			failed = append(failed, status)
		}
	}

	if len(failed) > 0 && strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: %s", generation.ErrURLRetrieval, strings.Join(failed, ", "))
	}

	return nil
}

func isBlockReason(reason string) bool {
	return reason != "" && reason != "BLOCKED_REASON_UNSPECIFIED"
}

// translateError converts SDK errors to provider-neutral ones. Context
// errors pass through unchanged so deadlines stay recognizable.
func translateError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return upstreamError(apiErr)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return upstreamError(*apiErrPtr)
	}

	return fmt.Errorf("gemini API call failed: %w", err)
}

func upstreamError(apiErr genai.APIError) *generation.UpstreamError {
	return &generation.UpstreamError{
		StatusCode: apiErr.Code,
		Status:     apiErr.Status,
		Message:    apiErr.Message,
	}
}
