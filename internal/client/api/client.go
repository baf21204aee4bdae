// Package api is the single entry point for outbound calls to the
// marketplace backend. Every resource wrapper goes through Client.Call,
// which attaches the session credential, refuses to transmit an expired
// one, and normalizes every failure mode into one classified error
// taxonomy. The only session mutation the pipeline ever performs is the
// idempotent logout, on local expiry or a server 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/liuwf/chainmarket/internal/client/session"
	"github.com/liuwf/chainmarket/internal/common"
	"github.com/liuwf/chainmarket/internal/logging"
)

// Request is the envelope for one outbound call.
type Request struct {
	Path   string
	Method string
	Query  url.Values
	Body   any
}

// Client issues calls against one backend base URL on behalf of the current
// session.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	log     logging.Logger
}

// New builds a Client. The timeout bounds the whole transport exchange;
// a call that outlives it is classified as network-unavailable.
func New(baseURL string, timeout time.Duration, sess *session.Session, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
}

// Call runs the two-stage pipeline around one outbound request and returns
// the unwrapped payload. On failure the returned error is always an *Error
// carrying one taxonomy Kind; no failure is swallowed and no failure is
// resolved as success.
func (c *Client) Call(ctx context.Context, req Request) (json.RawMessage, error) {
	reqID := uuid.NewString()
	log := c.log.With("req_id", reqID, "method", req.Method, "path", req.Path)

	// Outbound stage: an empty credential means an anonymous call; the
	// server decides whether that is acceptable. An expired one never leaves
	// the process.
	token := c.session.Credential()
	if token != "" && c.session.IsExpired(token) {
		log.Warn(ctx, "credential expired, clearing session")
		if err := c.session.Logout(ctx); err != nil {
			log.Error(ctx, "logout after expiry failed", "error", err)
		}
		return nil, &Error{Kind: KindCredentialExpired, Message: "session expired, sign in again", Err: common.ErrTokenExpired}
	}

	httpReq, err := c.buildRequest(ctx, req, token, reqID)
	if err != nil {
		log.Error(ctx, "invalid request", "error", err)
		return nil, &Error{Kind: KindConfiguration, Message: "invalid request", Err: err}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn(ctx, "no response from server", "error", err)
		return nil, &Error{Kind: KindNetworkUnavailable, Message: "server unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "response body truncated", "error", err)
		return nil, &Error{Kind: KindNetworkUnavailable, Message: "server unreachable", Err: err}
	}

	return c.classify(ctx, log, resp.StatusCode, body)
}

func (c *Client) buildRequest(ctx context.Context, req Request, token, reqID string) (*http.Request, error) {
	joined := strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	u, err := url.Parse(joined)
	if err != nil {
		return nil, err
	}
	if req.Query != nil {
		u.RawQuery = req.Query.Encode()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(common.RequestIDHeader, reqID)
	if token != "" {
		httpReq.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}
	return httpReq, nil
}

// classify is the inbound stage: transport rejections first, then the
// application envelope, then raw pass-through.
func (c *Client) classify(ctx context.Context, log logging.Logger, status int, body []byte) (json.RawMessage, error) {
	env, enveloped := decodeEnvelope(body)

	if status == http.StatusUnauthorized {
		log.Warn(ctx, "server rejected credential, clearing session")
		if err := c.session.Logout(ctx); err != nil {
			log.Error(ctx, "logout after 401 failed", "error", err)
		}
		return nil, &Error{Kind: KindUnauthorized, Message: "unauthorized, sign in again", Status: status, Err: common.ErrUnauthorized}
	}

	if status < 200 || status > 299 {
		msg := httpErrorMessage(status, env)
		log.Warn(ctx, "http error", "status", status, "message", msg)
		return nil, &Error{Kind: KindHTTPError, Message: msg, Status: status}
	}

	if enveloped {
		if env.Success() {
			log.Debug(ctx, "call ok", "status", status)
			return env.Payload(body), nil
		}
		msg := env.ErrorMessage()
		log.Debug(ctx, "application rejected", "code", *env.Code, "message", msg)
		return nil, &Error{Kind: KindApplicationRejected, Message: msg, Code: *env.Code}
	}

	log.Debug(ctx, "call ok", "status", status)
	return body, nil
}

func httpErrorMessage(status int, env *Envelope) string {
	embedded := ""
	if env != nil {
		if env.Message != "" {
			embedded = env.Message
		} else if env.Msg != "" {
			embedded = env.Msg
		}
	}

	switch status {
	case http.StatusForbidden:
		return "access denied"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusInternalServerError:
		if embedded != "" {
			return "server error: " + embedded
		}
		return "server error: internal server error"
	default:
		if embedded != "" {
			return embedded
		}
		return fmt.Sprintf("HTTP error %d", status)
	}
}
