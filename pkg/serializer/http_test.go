// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
package serializer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NVIDIA/componenthost/pkg/defaults"
)

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()

	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("UserAgent = %q, want %q", r.UserAgent, HttpReaderUserAgent)
	}
	if r.Client == nil {
		t.Fatal("Client is nil")
	}
	if r.Client.Timeout != defaults.HTTPClientTimeout {
		t.Errorf("Client.Timeout = %v, want %v", r.Client.Timeout, defaults.HTTPClientTimeout)
	}
	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport is %T, want *http.Transport", r.Client.Transport)
	}
	if tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify enabled by default")
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("custom/2.0"),
		WithTotalTimeout(3*time.Second),
		WithConnectTimeout(time.Second),
		WithInsecureSkipVerify(true),
	)

	if r.UserAgent != "custom/2.0" {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client.Timeout != 3*time.Second {
		t.Errorf("Client.Timeout = %v", r.Client.Timeout)
	}
	tr := r.Client.Transport.(*http.Transport)
	if !tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify not applied")
	}
}

func TestNewHttpReader_WithClient(t *testing.T) {
	client := &http.Client{Timeout: time.Minute}
	r := NewHttpReader(WithClient(client), WithUserAgent(""))

	if r.Client != client {
		t.Error("custom client was replaced")
	}
	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("empty UserAgent not defaulted: %q", r.UserAgent)
	}
}

func TestHttpReader_Read(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			fmt.Fprint(w, "components: {}")
		case "/boom":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	reader := NewHttpReader()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"success", server.URL + "/ok", "components: {}", false},
		{"not found", server.URL + "/missing", "", true},
		{"server error", server.URL + "/boom", "", true},
		{"empty url", "", "", true},
		{"invalid url", "://bad", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := reader.Read(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Read(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if string(data) != tt.want {
				t.Errorf("Read(%q) = %q, want %q", tt.url, data, tt.want)
			}
		})
	}

	if gotAgent != HttpReaderUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, HttpReaderUserAgent)
	}
}

func TestHttpReader_ReadTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, strings.Repeat("x", maxRemoteDocumentSize+1))
	}))
	defer server.Close()

	if _, err := NewHttpReader().Read(server.URL); err == nil {
		t.Fatal("expected error for oversized document")
	}
}

func TestHttpReader_ReadWithContext_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHttpReader().ReadWithContext(ctx, server.URL); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
