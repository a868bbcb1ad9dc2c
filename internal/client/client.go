// Package client is a typed JSON client for the survey HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"community_survey/internal/models"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// QuestionInput is the admin payload for create and update.
type QuestionInput struct {
	Prompt         string  `json:"prompt"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
}

// Profile is the editable part of a user record.
type Profile struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// NewProfile builds a Profile from form values; blank values are sent as null.
func NewProfile(name, email, address, dateOfBirth string) Profile {
	return Profile{
		Name:        nullable(name),
		Email:       nullable(email),
		Address:     nullable(address),
		DateOfBirth: nullable(dateOfBirth),
	}
}

// NewQuestionInput builds an admin payload; blank optional values are omitted.
func NewQuestionInput(prompt, imageURL, additionalInfo string) QuestionInput {
	return QuestionInput{
		Prompt:         prompt,
		ImageURL:       nullable(imageURL),
		AdditionalInfo: nullable(additionalInfo),
	}
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for baseURL (e.g. http://localhost:4000). A nil
// httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// GetUser returns the stored profile. Unknown ids yield a User carrying only UserID.
func (c *Client) GetUser(ctx context.Context, userID string) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, &u)
	return u, err
}

func (c *Client) SaveUser(ctx context.Context, userID string, p Profile) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(userID), p, &u)
	return u, err
}

func (c *Client) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var qs []models.Question
	err := c.do(ctx, http.MethodGet, "/api/questions", nil, &qs)
	return qs, err
}

func (c *Client) CreateQuestion(ctx context.Context, in QuestionInput) (models.Question, error) {
	var q models.Question
	err := c.do(ctx, http.MethodPost, "/api/questions", in, &q)
	return q, err
}

func (c *Client) UpdateQuestion(ctx context.Context, id int64, in QuestionInput) (models.Question, error) {
	var q models.Question
	err := c.do(ctx, http.MethodPut, "/api/questions/"+strconv.FormatInt(id, 10), in, &q)
	return q, err
}

func (c *Client) DeleteQuestion(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/questions/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) SubmitAnswer(ctx context.Context, userID string, questionID int64, answer bool) (models.Answer, error) {
	var a models.Answer
	body := models.Answer{UserID: userID, QuestionID: questionID, Answer: answer}
	err := c.do(ctx, http.MethodPost, "/api/answers", body, &a)
	return a, err
}

func (c *Client) ListAnswers(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	var out []models.UserAnswer
	err := c.do(ctx, http.MethodGet, "/api/answers/"+url.PathEscape(userID), nil, &out)
	return out, err
}

// DeleteAnswers removes every answer of the user and reports how many were removed.
func (c *Client) DeleteAnswers(ctx context.Context, userID string) (int64, error) {
	var resp struct {
		Removed int64 `json:"removed"`
	}
	err := c.do(ctx, http.MethodDelete, "/api/answers/"+url.PathEscape(userID), nil, &resp)
	return resp.Removed, err
}

func (c *Client) AnswerStats(ctx context.Context) ([]models.AnswerStat, error) {
	var out []models.AnswerStat
	err := c.do(ctx, http.MethodGet, "/api/stats/answers", nil, &out)
	return out, err
}

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &out)
	return out, err
}

func (c *Client) CreateContact(ctx context.Context, name, phone string) (models.Contact, error) {
	var out models.Contact
	body := map[string]string{"name": name, "phone": phone}
	err := c.do(ctx, http.MethodPost, "/api/contacts", body, &out)
	return out, err
}

func (c *Client) DeleteContact(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/contacts/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
