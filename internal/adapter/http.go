package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader = "X-Trace-ID"
	usersPath     = "/api/users"
)

type httpUserClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUserClient constructs an HTTP/REST implementation of [UserClient]
// talking to the server at address. A bare "host:port" is treated as
// plain HTTP.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPUserClient(address string, timeout time.Duration, logger *logger.Logger) (UserClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	client.OnError(func(req *resty.Request, err error) {
		logger.Err(err).Str("method", req.Method).Str("url", req.URL).Msg("user client request failed")
	})

	return &httpUserClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateUser implements [UserClient] via POST /api/users.
func (h *httpUserClient) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}

	return decodeUser(resp, "create user")
}

// GetUser implements [UserClient] via GET /api/users/{id}.
func (h *httpUserClient) GetUser(ctx context.Context, id string) (models.User, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get(usersPath + "/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}

	return decodeUser(resp, "get user")
}

// UpdateUser implements [UserClient] via PUT /api/users/{id}.
func (h *httpUserClient) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", user.ID).
		SetBody(user).
		Put(usersPath + "/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}

	return decodeUser(resp, "update user")
}

// DeleteUser implements [UserClient] via DELETE /api/users/{id}.
func (h *httpUserClient) DeleteUser(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(usersPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// FindUserByUsername implements [UserClient] via GET /api/users?username=.
func (h *httpUserClient) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return h.findUser(ctx, "username", username)
}

// FindUserByEmail implements [UserClient] via GET /api/users?email=.
func (h *httpUserClient) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return h.findUser(ctx, "email", email)
}

func (h *httpUserClient) findUser(ctx context.Context, param, value string) (models.User, error) {
	resp, err := h.request(ctx).
		SetQueryParam(param, value).
		Get(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("find user request: %w", err)
	}

	return decodeUser(resp, "find user")
}

// request starts a request bound to ctx, forwarding its trace ID.
func (h *httpUserClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func decodeUser(resp *resty.Response, op string) (models.User, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	return user, nil
}
