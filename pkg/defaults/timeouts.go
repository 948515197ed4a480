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

package defaults

import "time"

// Resolution defaults for enablement queries against settings accessors.
const (
	// ResolveTimeout bounds a single enablement query (all components) when
	// the caller's context carries no deadline. Accessors may be remote.
	ResolveTimeout = 5 * time.Second

	// ResolveConcurrency is the maximum number of components whose settings
	// are read in parallel during one enablement query.
	ResolveConcurrency = 8
)

// HTTP client defaults used when settings documents are fetched by URL.
const (
	// HTTPClientTimeout is the total timeout for a settings download.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the TCP connect timeout.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the TLS handshake timeout.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the time to wait for response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is how long idle connections are kept.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive period for outbound connections.
	HTTPKeepAlive = 30 * time.Second
)

// Kubernetes defaults used when settings documents live in a ConfigMap.
const (
	// ConfigMapReadTimeout bounds a single ConfigMap Get.
	ConfigMapReadTimeout = 10 * time.Second
)
