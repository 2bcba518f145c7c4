package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns an error if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// Signup POSTs to /api/signup. The session cookie from the response is kept
// by the client.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&profile).
		Post("/api/signup")
	if err != nil {
		return models.Profile{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&profile).
		Post("/api/login")
	if err != nil {
		return models.Profile{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) CheckSession(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profile).
		Get("/api/check_session")
	if err != nil {
		return models.Profile{}, fmt.Errorf("check session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListRecipes(ctx context.Context) ([]models.RecipeWithOwner, error) {
	var recipes []models.RecipeWithOwner

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&recipes).
		Get("/api/recipes")
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (h *httpServerAdapter) CreateRecipe(ctx context.Context, req models.CreateRecipeRequest) (models.RecipeWithOwner, error) {
	var recipe models.RecipeWithOwner

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&recipe).
		Post("/api/recipes")
	if err != nil {
		return models.RecipeWithOwner{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecipeWithOwner{}, err
	}

	return recipe, nil
}

// Version GETs /api/version, which answers with plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}
