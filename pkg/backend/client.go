// Package backend talks to the stock backend that owns every user balance.
package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"balance_gateway/models"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://chainlink-backend.daltek.tech"
	DefaultTimeout = 10 * time.Second
)

// Routes are the backend paths. UserStock must contain the {id} placeholder.
type Routes struct {
	UserStock  string
	Decrement  string
	Increment  string
	AdminUsers string
}

func DefaultRoutes() Routes {
	return Routes{
		UserStock:  "/stocks/user/stock/{id}",
		Decrement:  "/stocks/user/decrement",
		Increment:  "/stocks/user/increment",
		AdminUsers: "/admin/users/list",
	}
}

func (r Routes) withDefaults() Routes {
	def := DefaultRoutes()
	if r.UserStock == "" {
		r.UserStock = def.UserStock
	}
	if r.Decrement == "" {
		r.Decrement = def.Decrement
	}
	if r.Increment == "" {
		r.Increment = def.Increment
	}
	if r.AdminUsers == "" {
		r.AdminUsers = def.AdminUsers
	}
	return r
}

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Routes  Routes
}

type Client struct {
	http   *resty.Client
	routes Routes
	log    logrus.FieldLogger
}

// NewClient validates cfg once; every request made by the returned client carries the bearer token.
func NewClient(cfg Config, log logrus.FieldLogger) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrMissingCredential
	}
	if cfg.BaseURL == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "base url is empty")
	}
	routes := cfg.Routes.withDefaults()
	if !strings.Contains(routes.UserStock, "{id}") {
		return nil, errors.Wrapf(ErrInvalidConfig, "user stock route %q has no {id} placeholder", routes.UserStock)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetLogger(log)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.WithFields(logrus.Fields{
			"method": resp.Request.Method,
			"url":    resp.Request.URL,
			"status": resp.StatusCode(),
			"took":   resp.Time(),
		}).Debug("backend response")
		return nil
	})

	return &Client{
		http:   client,
		routes: routes,
		log:    log,
	}, nil
}

// GetUserStock reads the holding of product id for address.
func (c *Client) GetUserStock(ctx context.Context, address, id string) (models.BalanceRecord, error) {
	req := c.http.R().
		SetPathParam("id", id).
		SetQueryParam("address", address)

	body, err := c.execute(ctx, req, http.MethodGet, c.routes.UserStock)
	if err != nil {
		return models.BalanceRecord{}, err
	}
	return decodeData[models.BalanceRecord](body)
}

// Decrement removes quantity units of a product from address.
func (c *Client) Decrement(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error) {
	return c.adjust(ctx, c.routes.Decrement, in)
}

// Increment adds quantity units of a product to address.
func (c *Client) Increment(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error) {
	return c.adjust(ctx, c.routes.Increment, in)
}

// ListUsers returns the raw admin user listing.
func (c *Client) ListUsers(ctx context.Context) ([]byte, error) {
	return c.execute(ctx, c.http.R(), http.MethodGet, c.routes.AdminUsers)
}

func (c *Client) adjust(ctx context.Context, path string, in models.AdjustRequest) (models.AdjustmentResult, error) {
	body, err := c.execute(ctx, c.http.R().SetBody(in), http.MethodPut, path)
	if err != nil {
		return models.AdjustmentResult{}, err
	}
	return decodeData[models.AdjustmentResult](body)
}

func (c *Client) execute(ctx context.Context, req *resty.Request, method, path string) ([]byte, error) {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       truncate(resp.String()),
		}
	}
	return resp.Body(), nil
}

func decodeData[T any](body []byte) (T, error) {
	var (
		zero T
		env  models.Envelope[T]
	)
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, errors.Wrapf(ErrMalformedResponse, "decode body: %v", err)
	}
	if env.Data == nil {
		return zero, errors.Wrap(ErrMalformedResponse, "missing data object")
	}
	return *env.Data, nil
}
