// Copyright 2025 Riftforge Games
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


// Package secrets resolves string secrets, such as the generation API key,
// from Google Secret Manager.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

const defaultVersion = "latest"

var (
	// ErrEmptyReference indicates no secret name was given.
	ErrEmptyReference = errors.New("secret reference is empty")

	// ErrMissingProject indicates a bare secret id was given without a project.
	ErrMissingProject = errors.New("project id is required for a bare secret id")

	// ErrEmptyPayload indicates the secret version has no data.
	ErrEmptyPayload = errors.New("secret payload is empty")
)

// ResourceName expands ref into a full secret version resource name.
//
// Accepted forms:
//
//	projects/<p>/secrets/<s>/versions/<v>   used as is
//	projects/<p>/secrets/<s>                version "latest"
//	<s>                                     requires project; version "latest"
func ResourceName(project, ref string) (string, error) {
	ref = strings.Trim(strings.TrimSpace(ref), "/")
	if ref == "" {
		return "", ErrEmptyReference
	}

	if strings.HasPrefix(ref, "projects/") {
		parts := strings.Split(ref, "/")
		switch len(parts) {
		case 4:
			return ref + "/versions/" + defaultVersion, nil
		case 6:
			if parts[4] == "versions" && parts[5] != "" {
				return ref, nil
			}
		}
		return "", fmt.Errorf("malformed secret resource name %q", ref)
	}

	if strings.Contains(ref, "/") {
		return "", fmt.Errorf("malformed secret resource name %q", ref)
	}
	project = strings.TrimSpace(project)
	if project == "" {
		return "", ErrMissingProject
	}
	return "projects/" + project + "/secrets/" + ref + "/versions/" + defaultVersion, nil
}

type accessFunc func(ctx context.Context, name string) ([]byte, error)

// Resolver reads secret versions from Secret Manager.
type Resolver struct {
	project string
	access  accessFunc
	close   func() error
	logger  *slog.Logger
}

// NewResolver creates a Secret Manager client. project is used to expand
// bare secret ids and may be empty when only full resource names are used.
func NewResolver(ctx context.Context, project string, opts ...option.ClientOption) (*Resolver, error) {
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("secretmanager client init failed: %w", err)
	}

	access := func(ctx context.Context, name string) ([]byte, error) {
		resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
		if err != nil {
			return nil, err
		}
		if resp == nil || resp.Payload == nil {
			return nil, nil
		}
		return resp.Payload.Data, nil
	}

	return newResolver(project, access, client.Close), nil
}

func newResolver(project string, access accessFunc, closeFn func() error) *Resolver {
	return &Resolver{
		project: project,
		access:  access,
		close:   closeFn,
		logger:  slog.Default().With("component", "secret-resolver"),
	}
}

// Resolve returns the trimmed payload of the secret version named by ref.
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	name, err := ResourceName(r.project, ref)
	if err != nil {
		return "", err
	}

	r.logger.Debug("accessing secret version", "name", name)
	data, err := r.access(ctx, name)
	if err != nil {
		return "", fmt.Errorf("access secret version %s: %w", name, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%s: %w", name, ErrEmptyPayload)
	}
	return value, nil
}

// Close releases the Secret Manager client.
func (r *Resolver) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
