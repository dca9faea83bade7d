// Copyright 2025 Weft Data
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/weftdata/weft/pkg/discovery"
)

// Project is a platform project: the container for pipelines and
// automations.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Connector is one connector type from the platform registry, carrying the
// wizard configuration the discovery core validates.
type Connector struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`

	discovery.ConnectorConfig
}

// Pipeline is a configured data pipeline.
type Pipeline struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ProjectID string    `json:"project_id"`
	Connector string    `json:"connector"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Automation is a scheduled or event-driven platform automation.
type Automation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
	Active    bool   `json:"active"`
	Schedule  string `json:"schedule,omitempty"`
}

// QueryResult is the outcome of an ad-hoc discovery query.
type QueryResult struct {
	Columns  []string        `json:"columns"`
	Rows     [][]interface{} `json:"rows"`
	RowCount int             `json:"row_count"`
	Duration time.Duration   `json:"duration"`
}

// ListProjects returns all projects visible to the token.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var resp struct {
		Projects []Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/projects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// GetProject fetches one project by ID.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, "/v1/projects/"+url.PathEscape(id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListConnectors returns the connector registry.
func (c *Client) ListConnectors(ctx context.Context) ([]Connector, error) {
	var resp struct {
		Connectors []Connector `json:"connectors"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/connectors", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Connectors, nil
}

// GetConnector fetches one connector type from the registry.
func (c *Client) GetConnector(ctx context.Context, connectorType string) (*Connector, error) {
	var connector Connector
	if err := c.do(ctx, http.MethodGet, "/v1/connectors/"+url.PathEscape(connectorType), nil, &connector); err != nil {
		return nil, err
	}
	return &connector, nil
}

// ListPipelines returns pipelines, optionally scoped to a project.
func (c *Client) ListPipelines(ctx context.Context, projectID string) ([]Pipeline, error) {
	path := "/v1/pipelines"
	if projectID != "" {
		path += "?project_id=" + url.QueryEscape(projectID)
	}
	var resp struct {
		Pipelines []Pipeline `json:"pipelines"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Pipelines, nil
}

// GetPipeline fetches one pipeline by ID.
func (c *Client) GetPipeline(ctx context.Context, id string) (*Pipeline, error) {
	var pipeline Pipeline
	if err := c.do(ctx, http.MethodGet, "/v1/pipelines/"+url.PathEscape(id), nil, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// DeletePipeline removes a pipeline.
func (c *Client) DeletePipeline(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/pipelines/"+url.PathEscape(id), nil, nil)
}

// ListAutomations returns automations, optionally scoped to a project.
func (c *Client) ListAutomations(ctx context.Context, projectID string) ([]Automation, error) {
	path := "/v1/automations"
	if projectID != "" {
		path += "?project_id=" + url.QueryEscape(projectID)
	}
	var resp struct {
		Automations []Automation `json:"automations"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Automations, nil
}

// SetAutomationActive enables or disables an automation.
func (c *Client) SetAutomationActive(ctx context.Context, id string, active bool) (*Automation, error) {
	body := map[string]bool{"active": active}
	var automation Automation
	if err := c.do(ctx, http.MethodPatch, "/v1/automations/"+url.PathEscape(id), body, &automation); err != nil {
		return nil, err
	}
	return &automation, nil
}

// RunQuery executes an ad-hoc discovery query against a project's
// connected sources.
func (c *Client) RunQuery(ctx context.Context, projectID, statement string) (*QueryResult, error) {
	body := map[string]string{
		"project_id": projectID,
		"statement":  statement,
	}
	var raw struct {
		Columns    []string        `json:"columns"`
		Rows       [][]interface{} `json:"rows"`
		DurationMS int64           `json:"duration_ms"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/discovery/query", body, &raw); err != nil {
		return nil, err
	}
	return &QueryResult{
		Columns:  raw.Columns,
		Rows:     raw.Rows,
		RowCount: len(raw.Rows),
		Duration: time.Duration(raw.DurationMS) * time.Millisecond,
	}, nil
}

// Status pings the platform, returning its reported version.
func (c *Client) Status(ctx context.Context) (string, error) {
	var resp struct {
		Version string `json:"version"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/status", nil, &resp); err != nil {
		return "", err
	}
	if resp.Version == "" {
		return "", fmt.Errorf("platform returned no version")
	}
	return resp.Version, nil
}
