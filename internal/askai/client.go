package askai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lawmate/pkg/domain"
	derrors "lawmate/pkg/domain-errors"
)

// Question is what the hosted legal Q&A service accepts.
type Question struct {
	Question string          `json:"question"`
	Lang     domain.Language `json:"lang"`
}

// ArticleRef points at a law article the answer is grounded on.
type ArticleRef struct {
	Law           string `json:"law"`
	ArticleNumber string `json:"article_number"`
}

// Answer is the upstream response. Some deployments return short_answer
// instead of answer; Text() hides the difference.
type Answer struct {
	Answer      string       `json:"answer"`
	ShortAnswer string       `json:"short_answer"`
	Articles    []ArticleRef `json:"articles,omitempty"`
}

// Text returns whichever answer field the upstream populated.
func (a *Answer) Text() string {
	if a.Answer != "" {
		return a.Answer
	}
	return a.ShortAnswer
}

// Client is a thin wrapper over the hosted Q&A endpoint. The answering logic
// lives entirely upstream.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Ask forwards a question. Empty questions are rejected locally; upstream
// failures surface as unavailability rather than internal errors.
func (c *Client) Ask(ctx context.Context, q Question) (*Answer, error) {
	if q.Question == "" {
		return nil, derrors.New(derrors.CodeInvalidInput, "question is required")
	}
	if q.Lang == "" {
		q.Lang = domain.LanguageArabic
	}

	payload, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal question: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/askai", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build askai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, derrors.New(derrors.CodeUnavailable, "legal assistant is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, derrors.New(derrors.CodeUnavailable, fmt.Sprintf("legal assistant returned status %d", resp.StatusCode))
	}

	var answer Answer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, derrors.New(derrors.CodeUnavailable, "legal assistant returned an unreadable response")
	}
	return &answer, nil
}
