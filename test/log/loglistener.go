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

package log

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// LogListener is an io.Writer that records every zerolog JSON line written
// to it so tests can assert on what was logged.
type LogListener struct {
	sync.Mutex
	lines []string
}

func NewLogListener() *LogListener {
	return &LogListener{}
}

// Logger returns a zerolog.Logger that writes to the listener.
func (l *LogListener) Logger() *zerolog.Logger {
	logger := zerolog.New(l).With().Timestamp().Logger()
	return &logger
}

func (l *LogListener) Write(p []byte) (n int, err error) {
	l.Lock()
	defer l.Unlock()
	l.lines = append(l.lines, string(p))
	return len(p), nil
}

func (l *LogListener) Lines() []string {
	l.Lock()
	defer l.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *LogListener) lastLogLine() string {
	l.Lock()
	defer l.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

func (l *LogListener) AssertLastLogLine(t *testing.T, key string, value interface{}) {
	t.Helper()
	line := l.lastLogLine()
	var log map[string]interface{}
	err := json.Unmarshal([]byte(line), &log)
	if err != nil {
		t.Errorf("Fail to unmarshal lastLogLine %s", line)
		return
	}
	if log[key] != value {
		t.Errorf("log key [%s] value [%v] does not match the expected value [%v]", key, log[key], value)
	}
}

// AssertNotLogged fails the test when any recorded line contains s.
func (l *LogListener) AssertNotLogged(t *testing.T, s string) {
	t.Helper()
	for _, line := range l.Lines() {
		if strings.Contains(line, s) {
			t.Errorf("log line %s must not contain %q", line, s)
		}
	}
}
