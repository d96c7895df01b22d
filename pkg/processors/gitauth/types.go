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

package gitauth

import "github.com/rs/zerolog"

const (
	// BindingType selects the bindings this processor reads.
	BindingType = "configserver-git-auth"

	// EnableKey toggles the processor. It defaults to true.
	EnableKey = "spring.cloud.config.server.bindings.git-auth.enable"

	// URIKey receives the uri secret field.
	URIKey = "spring.cloud.config.server.git.uri"

	// UsernameKey receives the username secret field.
	UsernameKey = "spring.cloud.config.server.git.username"

	// PasswordKey receives the password secret field.
	PasswordKey = "spring.cloud.config.server.git.password"

	// SkipSSLValidationKey receives the skipSslValidation secret field.
	SkipSSLValidationKey = "spring.cloud.config.server.git.skipSslValidation"
)

// secretKeys maps each secret field onto the property it populates.
var secretKeys = []struct {
	secret   string
	property string
}{
	{secret: "uri", property: URIKey},
	{secret: "username", property: UsernameKey},
	{secret: "password", property: PasswordKey},
	{secret: "skipSslValidation", property: SkipSSLValidationKey},
}

// Processor maps git credential bindings onto config server properties.
type Processor struct {
	logger *zerolog.Logger
}
