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

package properties_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"
	"github.com/xyloman/configserver-on-tap/pkg/errs"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

func gitProperties() properties.Properties {
	return properties.Properties{
		"spring.cloud.config.server.git.uri":               "https://git.example.com/repo",
		"spring.cloud.config.server.git.username":          "u",
		"spring.cloud.config.server.git.password":          nil,
		"spring.cloud.config.server.git.skipSslValidation": "false",
	}
}

func TestPutGet(t *testing.T) {
	a := NewWithT(t)
	p := properties.New()
	p.Put("encrypt.key", "s3cr3t")
	p.Put("spring.cloud.config.server.git.password", nil)

	v, ok := p.Get("encrypt.key")
	a.Expect(ok).To(BeTrue())
	a.Expect(v).To(Equal("s3cr3t"))

	v, ok = p.Get("spring.cloud.config.server.git.password")
	a.Expect(ok).To(BeTrue())
	a.Expect(v).To(BeNil())

	_, ok = p.Get("spring.cloud.config.server.git.uri")
	a.Expect(ok).To(BeFalse())
}

func TestKeysSorted(t *testing.T) {
	a := NewWithT(t)
	a.Expect(gitProperties().Keys()).To(Equal([]string{
		"spring.cloud.config.server.git.password",
		"spring.cloud.config.server.git.skipSslValidation",
		"spring.cloud.config.server.git.uri",
		"spring.cloud.config.server.git.username",
	}))
}

func TestCloneMergeChanges(t *testing.T) {
	a := NewWithT(t)
	base := properties.Properties{"server.port": 8888, "encrypt.key": "old"}

	work := base.Clone()
	work.Put("encrypt.key", "new")
	work.Put("spring.cloud.config.server.git.password", nil)
	work.Put("server.port", 8888)

	a.Expect(base["encrypt.key"]).To(Equal("old"))

	changes := work.Changes(base)
	expected := properties.Properties{
		"encrypt.key":                             "new",
		"spring.cloud.config.server.git.password": nil,
	}
	if diff := cmp.Diff(expected, changes); diff != "" {
		t.Errorf("unexpected changes (-want +got):\n%s", diff)
	}

	base.Merge(changes)
	a.Expect(base).To(Equal(work))
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, f := range []properties.Format{properties.FormatYAML, properties.FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			a := NewWithT(t)
			var buf bytes.Buffer
			a.Expect(gitProperties().Write(&buf, f)).To(Succeed())

			got, err := properties.Read(buf.Bytes(), f)
			a.Expect(err).To(BeNil())
			if diff := cmp.Diff(gitProperties(), got); diff != "" {
				t.Errorf("unexpected properties (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteYAMLQuotesBooleanStrings(t *testing.T) {
	a := NewWithT(t)
	var buf bytes.Buffer
	a.Expect(gitProperties().Write(&buf, properties.FormatYAML)).To(Succeed())
	a.Expect(buf.String()).To(ContainSubstring(`spring.cloud.config.server.git.skipSslValidation: "false"`))
	a.Expect(buf.String()).To(ContainSubstring(`spring.cloud.config.server.git.password: null`))
}

func TestWriteJavaPropertiesOmitsNil(t *testing.T) {
	a := NewWithT(t)
	var buf bytes.Buffer
	a.Expect(gitProperties().Write(&buf, properties.FormatProperties)).To(Succeed())
	a.Expect(buf.String()).ToNot(ContainSubstring("password"))

	got, err := properties.Read(buf.Bytes(), properties.FormatProperties)
	a.Expect(err).To(BeNil())
	a.Expect(got).To(Equal(properties.Properties{
		"spring.cloud.config.server.git.uri":               "https://git.example.com/repo",
		"spring.cloud.config.server.git.username":          "u",
		"spring.cloud.config.server.git.skipSslValidation": "false",
	}))
}

func TestReadFlattensNestedYAML(t *testing.T) {
	a := NewWithT(t)
	doc := []byte("server:\n  port: 8888\nencrypt:\n  key: s3cr3t\n")
	got, err := properties.Read(doc, properties.FormatYAML)
	a.Expect(err).To(BeNil())
	a.Expect(got.Keys()).To(Equal([]string{"encrypt.key", "server.port"}))
	a.Expect(got["encrypt.key"]).To(Equal("s3cr3t"))
}

func TestParseFormat(t *testing.T) {
	a := NewWithT(t)
	f, err := properties.ParseFormat("Properties")
	a.Expect(err).To(BeNil())
	a.Expect(f).To(Equal(properties.FormatProperties))

	f, err = properties.ParseFormat("yml")
	a.Expect(err).To(BeNil())
	a.Expect(f).To(Equal(properties.FormatYAML))

	_, err = properties.ParseFormat("toml")
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&properties.UnsupportedFormatError{})))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrors(t *testing.T) {
	a := NewWithT(t)
	err := gitProperties().Write(failingWriter{}, properties.FormatJSON)
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&properties.WriteError{})))
	a.Expect(err).To(MatchError("WriteError (format=json): disk full"))

	err = gitProperties().Write(&bytes.Buffer{}, properties.Format("toml"))
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&properties.UnsupportedFormatError{})))

	_, err = properties.Read([]byte("{"), properties.FormatJSON)
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&properties.ReadError{})))
}

func TestReadFile(t *testing.T) {
	testCases := []struct {
		file     string
		expected properties.Properties
	}{
		{
			file: "testdata/base.yml",
			expected: properties.Properties{
				"server.port":                        uint64(8888),
				"spring.cloud.config.server.git.uri": "https://git.example.com/base",
			},
		},
		{
			file: "testdata/base.properties",
			expected: properties.Properties{
				"server.port":                        "8888",
				"spring.cloud.config.server.git.uri": "https://git.example.com/base",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			a := NewWithT(t)
			got, err := properties.ReadFile(tc.file)
			a.Expect(err).To(BeNil())
			a.Expect(got).To(Equal(tc.expected))
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	a := NewWithT(t)
	_, err := properties.ReadFile("testdata/base.toml")
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&properties.UnsupportedFormatError{})))

	_, err = properties.ReadFile("testdata/does-not-exist.yaml")
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&properties.ReadError{})))
}
