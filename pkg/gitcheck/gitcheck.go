// Copyright 2021 Comcast Cable Communications Management, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gitcheck

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/xyloman/configserver-on-tap/pkg/processors/gitauth"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

// FromProperties reads the git remote from props. The uri is required;
// skipSslValidation is parsed here as the processors pass it through as text.
func FromProperties(props properties.Properties) (*Remote, error) {
	r := &Remote{
		URI:      stringValue(props, gitauth.URIKey),
		Username: stringValue(props, gitauth.UsernameKey),
		Password: stringValue(props, gitauth.PasswordKey),
	}

	if r.URI == "" {
		return nil, &MissingPropertyError{Key: gitauth.URIKey}
	}

	skip := strings.TrimSpace(stringValue(props, gitauth.SkipSSLValidationKey))
	if skip != "" {
		b, err := strconv.ParseBool(skip)
		if err != nil {
			return nil, &InvalidPropertyError{Key: gitauth.SkipSSLValidationKey, Err: err}
		}
		r.SkipSSLValidation = b
	}

	return r, nil
}

func stringValue(props properties.Properties, key string) string {
	v, ok := props.Get(key)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Auth returns basic auth credentials, or nil for an anonymous remote.
func (r *Remote) Auth() transport.AuthMethod {
	if r.Username == "" && r.Password == "" {
		return nil
	}
	return &http.BasicAuth{Username: r.Username, Password: r.Password}
}

// ListRefs performs the equivalent of git ls-remote and returns the sorted
// reference names advertised by the remote.
func (r *Remote) ListRefs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ListError{URI: r.URI, Err: err}
	}

	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{r.URI},
	})

	type result struct {
		refs []*plumbing.Reference
		err  error
	}
	done := make(chan result, 1)
	go func() {
		refs, err := remote.List(&git.ListOptions{
			Auth:            r.Auth(),
			InsecureSkipTLS: r.SkipSSLValidation,
		})
		done <- result{refs: refs, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &ListError{URI: r.URI, Err: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return nil, &ListError{URI: r.URI, Err: res.err}
		}
		names := make([]string, 0, len(res.refs))
		for _, ref := range res.refs {
			names = append(names, ref.Name().String())
		}
		sort.Strings(names)
		return names, nil
	}
}
