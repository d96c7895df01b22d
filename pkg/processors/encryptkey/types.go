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

package encryptkey

import "github.com/rs/zerolog"

const (
	// BindingType selects the bindings this processor reads.
	BindingType = "configserver-encrypt-key"

	// EnableKey toggles the processor. It defaults to true.
	EnableKey = "spring.cloud.config.server.bindings.encrypt-key.enable"

	// KeyProperty receives the key secret field.
	KeyProperty = "encrypt.key"

	secretKey = "key"
)

// Processor maps an encryption key binding onto the encrypt.key property.
type Processor struct {
	logger *zerolog.Logger
}
