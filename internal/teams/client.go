// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

type ClientInterface interface {
	CompanyForTeam(ctx context.Context, teamID string) (string, error)
	IsTeamMember(ctx context.Context, teamID, userID string) (bool, error)
}

// Client talks to the external team directory. Team membership is owned
// there; this service only consults it as an authorization hint.
type Client struct {
	baseURL string
	http    *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

type team struct {
	ID        string   `json:"id"`
	CompanyID string   `json:"company_id"`
	MemberIDs []string `json:"member_ids"`
}

func (c *Client) getTeam(ctx context.Context, teamID string) (*team, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/teams/%s", c.baseURL, teamID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "team_directory"}, 0); mErr != nil {
			c.logger.Warnf("failed to set availability metric: %v", mErr)
		}
		return nil, fmt.Errorf("team directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "team_directory"}, 1); mErr != nil {
		c.logger.Warnf("failed to set availability metric: %v", mErr)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("team directory returned status %d", resp.StatusCode)
	}

	var t team
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode team: %w", err)
	}

	return &t, nil
}

func (c *Client) CompanyForTeam(ctx context.Context, teamID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "teams.Client.CompanyForTeam")
	defer span.End()

	t, err := c.getTeam(ctx, teamID)
	if err != nil {
		return "", err
	}

	return t.CompanyID, nil
}

func (c *Client) IsTeamMember(ctx context.Context, teamID, userID string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "teams.Client.IsTeamMember")
	defer span.End()

	t, err := c.getTeam(ctx, teamID)
	if err != nil {
		return false, err
	}

	return slices.Contains(t.MemberIDs, userID), nil
}
