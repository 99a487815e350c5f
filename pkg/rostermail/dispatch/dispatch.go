// Package dispatch sends composed drafts through an authenticated
// mail-send API, one recipient at a time.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
)

// ErrAuth indicates the bearer token could not be acquired. It aborts the
// whole send pass before any draft goes out.
var ErrAuth = errors.New("mail token acquisition failed")

// SendError is a per-recipient delivery failure. It is recorded in the
// report and never aborts the remaining sends.
type SendError struct {
	Recipient string
	Err       error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to %s failed: %v", e.Recipient, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// TokenSource supplies a bearer token for the mail API. Interactive login
// and silent refresh live behind this interface, outside the core.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token(context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty token", ErrAuth)
	}
	return string(s), nil
}

// Dispatcher sends a single draft.
type Dispatcher interface {
	Send(ctx context.Context, token string, draft models.EmailDraft) error
}

// Failure records one failed recipient in a report.
type Failure struct {
	Recipient string
	MessageID string
	Err       error
}

// Report aggregates one best-effort send pass.
type Report struct {
	Sent     int
	Failed   int
	Failures []Failure
}

// HTTP posts drafts to a mail-send endpoint, one request per recipient.
type HTTP struct {
	Endpoint string
	Client   *http.Client
	Log      *zap.Logger
}

// NewHTTP returns a dispatcher for the given endpoint.
func NewHTTP(endpoint string, timeout time.Duration, log *zap.Logger) *HTTP {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
		Log:      log,
	}
}

type payload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send implements Dispatcher.
func (h *HTTP) Send(ctx context.Context, token string, draft models.EmailDraft) error {
	body, err := json.Marshal(payload{To: draft.To, Subject: draft.Subject, Body: draft.HTML})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("mail API returned %s", resp.Status)
	}
	return nil
}

// Sender drives a best-effort sequential broadcast: one token acquisition
// up front, then one awaited send per draft in input order.
type Sender struct {
	Dispatcher Dispatcher
	Tokens     TokenSource
	Log        *zap.Logger
	// Progress, when set, is called after each send attempt with the
	// number of attempts so far and the total.
	Progress func(done, total int)
}

// NewSender returns a Sender over the given dispatcher and token source.
func NewSender(d Dispatcher, ts TokenSource, log *zap.Logger) *Sender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sender{Dispatcher: d, Tokens: ts, Log: log}
}

// SendAll sends every draft sequentially. A per-recipient failure is logged,
// counted and skipped over; only token acquisition aborts the pass.
func (s *Sender) SendAll(ctx context.Context, drafts []models.EmailDraft) (*Report, error) {
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, ErrAuth) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	report := &Report{}
	for i, draft := range drafts {
		id := uuid.NewString()
		if err := s.Dispatcher.Send(ctx, token, draft); err != nil {
			sendErr := &SendError{Recipient: draft.To, Err: err}
			s.Log.Warn("send failed",
				zap.String("message_id", id),
				zap.String("recipient", draft.To),
				zap.Error(err),
			)
			report.Failed++
			report.Failures = append(report.Failures, Failure{
				Recipient: draft.To,
				MessageID: id,
				Err:       sendErr,
			})
		} else {
			s.Log.Debug("sent",
				zap.String("message_id", id),
				zap.String("recipient", draft.To),
			)
			report.Sent++
		}
		if s.Progress != nil {
			s.Progress(i+1, len(drafts))
		}
	}
	return report, nil
}
