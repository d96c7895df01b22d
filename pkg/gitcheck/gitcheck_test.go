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

package gitcheck_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	. "github.com/onsi/gomega"
	"github.com/sebdah/goldie/v2"
	"github.com/xyloman/configserver-on-tap/pkg/errs"
	"github.com/xyloman/configserver-on-tap/pkg/gitcheck"
	"github.com/xyloman/configserver-on-tap/pkg/processors/gitauth"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

func TestErrorMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "MissingPropertyError", err: &gitcheck.MissingPropertyError{Key: gitauth.URIKey}},
		{
			name: "InvalidPropertyError",
			err:  &gitcheck.InvalidPropertyError{Key: gitauth.SkipSSLValidationKey, Err: fmt.Errorf("wrapped error")},
		},
		{
			name: "ListError",
			err:  &gitcheck.ListError{URI: "https://git.example.com/repo", Err: fmt.Errorf("wrapped error")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tc.name, []byte(fmt.Sprint(tc.err)))
			g.Assert(t, tc.name+"_unwrapped", []byte(fmt.Sprint(errors.Unwrap(tc.err))))
		})
	}
}

func TestFromProperties(t *testing.T) {
	testCases := []struct {
		name     string
		props    properties.Properties
		expected *gitcheck.Remote
		err      error
	}{
		{
			name: "complete",
			props: properties.Properties{
				gitauth.URIKey:               "https://git.example.com/repo",
				gitauth.UsernameKey:          "u",
				gitauth.PasswordKey:          "p",
				gitauth.SkipSSLValidationKey: "true",
			},
			expected: &gitcheck.Remote{
				URI: "https://git.example.com/repo", Username: "u", Password: "p", SkipSSLValidation: true,
			},
		},
		{
			name: "nil_values",
			props: properties.Properties{
				gitauth.URIKey:               "https://git.example.com/repo",
				gitauth.UsernameKey:          nil,
				gitauth.PasswordKey:          nil,
				gitauth.SkipSSLValidationKey: nil,
			},
			expected: &gitcheck.Remote{URI: "https://git.example.com/repo"},
		},
		{
			name:  "missing_uri",
			props: properties.Properties{gitauth.URIKey: nil},
			err:   &gitcheck.MissingPropertyError{},
		},
		{
			name: "invalid_skip",
			props: properties.Properties{
				gitauth.URIKey:               "https://git.example.com/repo",
				gitauth.SkipSSLValidationKey: "sometimes",
			},
			err: &gitcheck.InvalidPropertyError{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewWithT(t)
			r, err := gitcheck.FromProperties(tc.props)
			if tc.err != nil {
				a.Expect(errs.Type(err)).To(Equal(errs.Type(tc.err)))
				a.Expect(r).To(BeNil())
				return
			}
			a.Expect(err).To(BeNil())
			a.Expect(r).To(Equal(tc.expected))
		})
	}
}

func TestAuth(t *testing.T) {
	a := NewWithT(t)
	a.Expect((&gitcheck.Remote{URI: "https://a"}).Auth()).To(BeNil())

	auth := (&gitcheck.Remote{URI: "https://a", Username: "u", Password: "p"}).Auth()
	a.Expect(auth).To(Equal(&githttp.BasicAuth{Username: "u", Password: "p"}))
}

func pktLine(s string) string {
	return fmt.Sprintf("%04x%s", len(s)+4, s)
}

func advertisement() string {
	const (
		main = "1111111111111111111111111111111111111111"
		tag  = "2222222222222222222222222222222222222222"
	)
	return pktLine("# service=git-upload-pack\n") + "0000" +
		pktLine(main+" refs/heads/main\x00ofs-delta\n") +
		pktLine(tag+" refs/tags/v1\n") +
		"0000"
}

func TestListRefs(t *testing.T) {
	a := NewWithT(t)

	var (
		mu       sync.Mutex
		user     string
		password string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/info/refs") {
			http.NotFound(w, r)
			return
		}
		mu.Lock()
		user, password, _ = r.BasicAuth()
		mu.Unlock()
		w.Header().Set("Content-Type", "application/x-git-upload-pack-advertisement")
		fmt.Fprint(w, advertisement())
	}))
	defer srv.Close()

	r := &gitcheck.Remote{URI: srv.URL + "/repo.git", Username: "u", Password: "p"}
	refs, err := r.ListRefs(context.Background())
	a.Expect(err).To(BeNil())
	a.Expect(refs).To(Equal([]string{"refs/heads/main", "refs/tags/v1"}))

	mu.Lock()
	defer mu.Unlock()
	a.Expect(user).To(Equal("u"))
	a.Expect(password).To(Equal("p"))
}

func TestListRefsUnauthorized(t *testing.T) {
	a := NewWithT(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := (&gitcheck.Remote{URI: srv.URL + "/repo.git"}).ListRefs(context.Background())
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&gitcheck.ListError{})))
}

func TestListRefsCanceled(t *testing.T) {
	a := NewWithT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&gitcheck.Remote{URI: "https://git.example.com/repo"}).ListRefs(ctx)
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&gitcheck.ListError{})))
	a.Expect(errors.Is(err, context.Canceled)).To(BeTrue())
}
